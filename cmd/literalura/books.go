// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mariocortezBEST/literalura/internal/language"
	"github.com/mariocortezBEST/literalura/pkg/types"
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "List stored books",
	Long: `Books lists the stored catalog. Use --language to filter by normalized
language code or --top to show only the most-downloaded books.`,
	RunE: runBooks,
}

func runBooks(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	lang, _ := cmd.Flags().GetString("language")
	top, _ := cmd.Flags().GetInt("top")

	var books []types.Book
	switch {
	case top > 0:
		books, err = store.TopBooksByDownloads(ctx, top)
	case cmd.Flags().Changed("top"):
		n := cfg.Query.TopN
		if n <= 0 {
			n = 10
		}
		books, err = store.TopBooksByDownloads(ctx, n)
	case lang != "":
		books, err = store.BooksByLanguage(ctx, lang)
	default:
		books, err = store.AllBooks(ctx)
	}
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(books)
	}

	printBookTable(books)
	return nil
}

func printBookTable(books []types.Book) {
	if len(books) == 0 {
		fmt.Println("No books stored.")
		return
	}

	fmt.Printf("%-50s  %-30s  %-12s  %s\n", "Title", "Author", "Language", "Downloads")
	fmt.Println(strings.Repeat("-", 106))

	for _, b := range books {
		title := b.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		author := ""
		if b.Author != nil {
			author = b.Author.Name
		}
		if len(author) > 30 {
			author = author[:27] + "..."
		}
		fmt.Printf("%-50s  %-30s  %-12s  %d\n",
			title, author, language.Language(b.Language).Name(), b.DownloadCount)
	}

	fmt.Printf("\n%d books\n", len(books))
}

func init() {
	booksCmd.Flags().String("language", "", "filter by normalized language code (es, en, fr, de, pt, it, la, other)")
	booksCmd.Flags().Int("top", 0, "show the N most-downloaded books (0 with flag set = configured default)")
	booksCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(booksCmd)
}
