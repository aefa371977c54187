// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML or JSON",
	Long: `Export writes every stored book, joined with its author and the
human-readable language name, to a YAML or JSON file.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	switch format {
	case "yaml", "":
		if out == "" {
			out = "export.yaml"
		}
		if err := store.ExportYAML(context.Background(), out); err != nil {
			return err
		}
	case "json":
		if out == "" {
			out = "export.json"
		}
		if err := store.ExportJSON(context.Background(), out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	fmt.Println("Exported to", out)
	return nil
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().String("out", "", "output file (default: export.yaml or export.json)")

	rootCmd.AddCommand(exportCmd)
}
