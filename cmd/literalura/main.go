// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the literalura CLI, a local catalog
// of books and authors fed from the Gutendex bibliographic API.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mariocortezBEST/literalura/internal/catalog"
	"github.com/mariocortezBEST/literalura/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the literalura CLI.
var rootCmd = &cobra.Command{
	Use:   "literalura",
	Short: "Catalog books and authors from the Gutendex API",
	Long: `literalura maintains a local catalog of books and authors. The ingest
command searches the Gutendex bibliographic API by title and stores the
first match, deduplicating authors by name and books by title and external
identifier. The remaining commands are read-only queries and statistics
over the stored catalog.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./literalura.yaml or ~/.config/literalura/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "SQLite database file (default: ./literalura.db)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("literalura")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "literalura"))
		}
	}

	viper.SetEnvPrefix("LITERALURA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the configuration from viper keys and flags. The
// --db flag overrides storage.path.
func loadConfig() types.Config {
	cfg := types.Config{
		Catalog: types.CatalogConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("catalog.timeout"),
				UserAgent: viper.GetString("catalog.user_agent"),
			},
			BaseURL:           viper.GetString("catalog.base_url"),
			MaxRetries:        viper.GetInt("catalog.max_retries"),
			RequestsPerSecond: viper.GetInt("catalog.requests_per_second"),
		},
		Storage: types.StorageConfig{Path: viper.GetString("storage.path")},
		Query:   types.QueryConfig{TopN: viper.GetInt("query.top_n")},
	}

	if db, _ := rootCmd.PersistentFlags().GetString("db"); db != "" {
		cfg.Storage.Path = db
	}
	return cfg
}

// openStore opens the catalog database from the loaded configuration.
func openStore() (*catalog.Store, types.Config, error) {
	cfg := loadConfig()
	store, err := catalog.NewStore(cfg.Storage)
	if err != nil {
		return nil, cfg, err
	}
	return store, cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
