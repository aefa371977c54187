// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mariocortezBEST/literalura/pkg/types"
)

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "List stored authors",
	Long: `Authors lists the stored authors. Use --name for a case-insensitive
contains match, --alive-in to list authors alive in a given year, or
--born-from/--born-to for an inclusive birth-year range.`,
	RunE: runAuthors,
}

func runAuthors(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	name, _ := cmd.Flags().GetString("name")
	aliveIn, _ := cmd.Flags().GetInt("alive-in")
	bornFrom, _ := cmd.Flags().GetInt("born-from")
	bornTo, _ := cmd.Flags().GetInt("born-to")

	var authors []types.Author
	switch {
	case name != "":
		authors, err = store.AuthorsByName(ctx, name)
	case cmd.Flags().Changed("alive-in"):
		authors, err = store.AuthorsAliveIn(ctx, aliveIn)
	case cmd.Flags().Changed("born-from") || cmd.Flags().Changed("born-to"):
		authors, err = store.AuthorsByBirthYearRange(ctx, bornFrom, bornTo)
	default:
		authors, err = store.AllAuthors(ctx)
	}
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(authors)
	}

	printAuthorTable(authors)
	return nil
}

func printAuthorTable(authors []types.Author) {
	if len(authors) == 0 {
		fmt.Println("No authors stored.")
		return
	}

	fmt.Printf("%-40s  %s\n", "Name", "Life span")
	fmt.Println(strings.Repeat("-", 60))

	for _, a := range authors {
		name := a.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		fmt.Printf("%-40s  %s\n", name, a.LifeSpan())
	}

	fmt.Printf("\n%d authors\n", len(authors))
}

func init() {
	authorsCmd.Flags().String("name", "", "case-insensitive contains match on the author name")
	authorsCmd.Flags().Int("alive-in", 0, "list authors alive in this year")
	authorsCmd.Flags().Int("born-from", 0, "birth-year range start (inclusive)")
	authorsCmd.Flags().Int("born-to", 0, "birth-year range end (inclusive)")
	authorsCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(authorsCmd)
}
