// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mariocortezBEST/literalura/internal/gutendex"
	"github.com/mariocortezBEST/literalura/internal/language"
	"github.com/mariocortezBEST/literalura/pkg/types"
)

// BookSearcher queries the external catalog for books matching a free-text
// title. *gutendex.Client satisfies it; tests substitute fakes.
type BookSearcher interface {
	Search(ctx context.Context, title string) (*gutendex.SearchResponse, error)
}

// Ingestor fetches one catalog search result, normalizes it, and persists
// it without duplicating authors or books.
type Ingestor struct {
	store  *Store
	client BookSearcher
}

// NewIngestor builds an Ingestor on top of the store and catalog client.
func NewIngestor(store *Store, client BookSearcher) *Ingestor {
	return &Ingestor{store: store, client: client}
}

// IngestByTitle ingests the first catalog entry matching title. The steps
// run strictly in order with no retries:
//
//  1. A book already stored whose title contains the search text is
//     returned as-is; the external catalog is not queried again, even
//     when the stored match is a loose superstring match.
//  2. Otherwise the catalog is searched. Transport and parse failures
//     abort the call with nothing persisted.
//  3. An empty result page, or a first entry too incomplete to store
//     (blank title, no author, no language), yields ErrNotFound.
//  4. The first entry's first author is resolved against the store and
//     its first language normalized; then the book is saved and returned.
//
// A blank title is rejected with an *InputValidationError before any I/O.
// Progress lines are written to w.
func (in *Ingestor) IngestByTitle(ctx context.Context, title string, w io.Writer) (*types.Book, error) {
	query := strings.TrimSpace(title)
	if query == "" {
		return nil, &InputValidationError{Field: "title", Reason: "must not be blank"}
	}

	if book, ok, err := in.store.FindBookByTitleContains(ctx, query); err != nil {
		return nil, err
	} else if ok {
		fmt.Fprintf(w, "already in catalog: %q by %s\n", book.Title, book.Author.Name)
		return book, nil
	}

	resp, err := in.client.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	entry, ok := resp.FirstBook()
	if !ok {
		return nil, ErrNotFound
	}

	// Entries without a usable title, author, or language are skipped
	// rather than stored partially; the author column stays NOT NULL.
	author, hasAuthor := entry.FirstAuthor()
	if !entry.Usable() || !hasAuthor || author.CleanName() == "" {
		fmt.Fprintf(w, "skipping incomplete catalog entry %d (%q)\n", entry.ID, entry.Title)
		return nil, ErrNotFound
	}

	// The external identifier is the strong dedup key: a previously
	// ingested entry is reused even when its stored title did not match
	// the contains check above.
	if entry.ID != 0 {
		if book, ok, err := in.store.FindBookByGutendexID(ctx, entry.ID); err != nil {
			return nil, err
		} else if ok {
			fmt.Fprintf(w, "already in catalog: %q by %s\n", book.Title, book.Author.Name)
			return book, nil
		}
	}

	resolved, err := in.store.ResolveAuthor(ctx, author.CleanName(), author.BirthYear, author.DeathYear)
	if err != nil {
		return nil, err
	}

	code, _ := entry.FirstLanguage()
	lang := language.Resolve(code)

	book := &types.Book{
		Title:         entry.CleanTitle(),
		Language:      lang.Code(),
		DownloadCount: entry.SafeDownloadCount(),
		Author:        resolved,
	}
	if entry.ID != 0 {
		id := entry.ID
		book.GutendexID = &id
	}

	if err := in.store.SaveBook(ctx, book); err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "saved: %q by %s %s [%s]\n",
		book.Title, resolved.Name, resolved.LifeSpan(), lang.Name())
	return book, nil
}
