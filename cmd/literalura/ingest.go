// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mariocortezBEST/literalura/internal/catalog"
	"github.com/mariocortezBEST/literalura/internal/gutendex"
	"github.com/mariocortezBEST/literalura/internal/language"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <title>...",
	Short: "Search the catalog API by title and store the first match",
	Long: `Ingest searches the Gutendex API for books matching the given title and
stores the first result. A book already stored under a matching title, or
under the same external identifier, is reused instead of duplicated. The
author is resolved against existing records by name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	client := gutendex.NewClient(cfg.Catalog)
	ingestor := catalog.NewIngestor(store, client)

	title := strings.Join(args, " ")
	book, err := ingestor.IngestByTitle(context.Background(), title, os.Stdout)
	if err != nil {
		return ingestError(title, err)
	}

	fmt.Printf("\n%q by %s %s\n", book.Title, book.Author.Name, book.Author.LifeSpan())
	fmt.Printf("  language:  %s\n", language.Language(book.Language).Name())
	fmt.Printf("  downloads: %d\n", book.DownloadCount)
	if book.GutendexID != nil {
		fmt.Printf("  gutendex:  %d\n", *book.GutendexID)
	}
	return nil
}

// ingestError maps pipeline failures to distinct user-facing messages.
// Not-found is a normal outcome and exits zero.
func ingestError(title string, err error) error {
	var (
		transport  *gutendex.TransportError
		parse      *gutendex.ParseError
		validation *catalog.InputValidationError
	)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		fmt.Printf("No books found for %q.\n", title)
		return nil
	case errors.As(err, &transport):
		return fmt.Errorf("catalog unreachable: %w", err)
	case errors.As(err, &parse):
		return fmt.Errorf("catalog sent an unreadable response: %w", err)
	case errors.As(err, &validation):
		return err
	default:
		return err
	}
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
