// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mariocortezBEST/literalura/internal/language"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	Long: `Stats prints aggregate counts over the stored catalog: totals, books
grouped by language, and authors grouped by birth century. Authors with an
unknown birth year are excluded from the century grouping.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()

	books, err := store.CountBooks(ctx)
	if err != nil {
		return err
	}
	authors, err := store.CountAuthors(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%d books, %d authors\n", books, authors)

	byLanguage, err := store.CountBooksByLanguage(ctx)
	if err != nil {
		return err
	}
	if len(byLanguage) > 0 {
		fmt.Println("\nBooks by language:")
		for _, lc := range byLanguage {
			fmt.Printf("  %-12s %d\n", language.Language(lc.Language).Name(), lc.Count)
		}
	}

	byCentury, err := store.CountAuthorsByCentury(ctx)
	if err != nil {
		return err
	}
	if len(byCentury) > 0 {
		fmt.Println("\nAuthors by birth century:")
		for _, cc := range byCentury {
			fmt.Printf("  %ds %d\n", cc.Century, cc.Count)
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
