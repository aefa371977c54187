// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariocortezBEST/literalura/internal/gutendex"
)

// fakeSearcher returns queued responses in order and counts calls.
type fakeSearcher struct {
	responses []*gutendex.SearchResponse
	err       error
	calls     int
}

func (f *fakeSearcher) Search(_ context.Context, _ string) (*gutendex.SearchResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

func searchPage(books ...gutendex.Book) *gutendex.SearchResponse {
	return &gutendex.SearchResponse{Count: len(books), Results: books}
}

func quijoteEntry() gutendex.Book {
	return gutendex.Book{
		ID:    2000,
		Title: "Don Quijote",
		Authors: []gutendex.Author{
			{Name: "Cervantes Saavedra, Miguel de", BirthYear: intPtr(1547), DeathYear: intPtr(1616)},
		},
		Languages:     []string{"es"},
		DownloadCount: 12345,
	}
}

func TestIngestByTitle_PersistsFirstResult(t *testing.T) {
	s := newTestStore(t)
	in := NewIngestor(s, &fakeSearcher{responses: []*gutendex.SearchResponse{
		searchPage(quijoteEntry(), gutendex.Book{ID: 996, Title: "Don Quixote", Languages: []string{"en"}}),
	}})

	book, err := in.IngestByTitle(context.Background(), "quijote", io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "Don Quijote", book.Title)
	assert.Equal(t, "es", book.Language)
	assert.Equal(t, int64(12345), book.DownloadCount)
	require.NotNil(t, book.GutendexID)
	assert.Equal(t, int64(2000), *book.GutendexID)
	require.NotNil(t, book.Author)
	assert.Equal(t, "Cervantes Saavedra, Miguel de", book.Author.Name)

	// Only the first result page entry is persisted.
	n, err := s.CountBooks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestIngestByTitle_SecondCallHitsLocalCheck(t *testing.T) {
	s := newTestStore(t)
	fake := &fakeSearcher{responses: []*gutendex.SearchResponse{searchPage(quijoteEntry())}}
	in := NewIngestor(s, fake)
	ctx := context.Background()

	first, err := in.IngestByTitle(ctx, "quijote", io.Discard)
	require.NoError(t, err)

	second, err := in.IngestByTitle(ctx, "quijote", io.Discard)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, fake.calls, "local match must not re-query the catalog")

	n, err := s.CountBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestIngestByTitle_LooseLocalMatchShortCircuits(t *testing.T) {
	s := newTestStore(t)
	fake := &fakeSearcher{responses: []*gutendex.SearchResponse{searchPage(quijoteEntry())}}
	in := NewIngestor(s, fake)
	ctx := context.Background()

	_, err := in.IngestByTitle(ctx, "Don Quijote", io.Discard)
	require.NoError(t, err)

	// A substring of the stored title matches locally, even though a
	// fresh catalog search might rank a different book first.
	book, err := in.IngestByTitle(ctx, "quij", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "Don Quijote", book.Title)
	assert.Equal(t, 1, fake.calls)
}

func TestIngestByTitle_AuthorDedupAcrossBooks(t *testing.T) {
	s := newTestStore(t)
	austen := gutendex.Author{Name: "Austen, Jane", BirthYear: intPtr(1775), DeathYear: intPtr(1817)}
	fake := &fakeSearcher{responses: []*gutendex.SearchResponse{
		searchPage(gutendex.Book{ID: 1342, Title: "Pride and Prejudice", Authors: []gutendex.Author{austen}, Languages: []string{"en"}, DownloadCount: 100}),
		searchPage(gutendex.Book{ID: 158, Title: "Emma", Authors: []gutendex.Author{{Name: "AUSTEN, JANE"}}, Languages: []string{"en"}, DownloadCount: 50}),
	}}
	in := NewIngestor(s, fake)
	ctx := context.Background()

	first, err := in.IngestByTitle(ctx, "pride and prejudice", io.Discard)
	require.NoError(t, err)
	second, err := in.IngestByTitle(ctx, "emma", io.Discard)
	require.NoError(t, err)

	assert.Equal(t, first.Author.ID, second.Author.ID, "same author name must reuse the row")

	n, err := s.CountAuthors(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestIngestByTitle_EmptyResultIsNotFound(t *testing.T) {
	s := newTestStore(t)
	in := NewIngestor(s, &fakeSearcher{responses: []*gutendex.SearchResponse{searchPage()}})

	_, err := in.IngestByTitle(context.Background(), "zzzqqqnonexistent", io.Discard)
	assert.ErrorIs(t, err, ErrNotFound)

	books, err := s.CountBooks(context.Background())
	require.NoError(t, err)
	assert.Zero(t, books, "not-found must leave no rows behind")
	authors, err := s.CountAuthors(context.Background())
	require.NoError(t, err)
	assert.Zero(t, authors)
}

func TestIngestByTitle_UnusableEntrySkipped(t *testing.T) {
	tests := []struct {
		name  string
		entry gutendex.Book
	}{
		{"no authors", gutendex.Book{ID: 5, Title: "Beowulf", Languages: []string{"en"}}},
		{"no languages", gutendex.Book{ID: 6, Title: "Beowulf", Authors: []gutendex.Author{{Name: "Anonymous"}}}},
		{"blank title", gutendex.Book{ID: 7, Title: "  ", Authors: []gutendex.Author{{Name: "Anonymous"}}, Languages: []string{"en"}}},
		{"blank author name", gutendex.Book{ID: 8, Title: "Beowulf", Authors: []gutendex.Author{{Name: "   "}}, Languages: []string{"en"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			in := NewIngestor(s, &fakeSearcher{responses: []*gutendex.SearchResponse{searchPage(tt.entry)}})

			_, err := in.IngestByTitle(context.Background(), "beowulf", io.Discard)
			assert.ErrorIs(t, err, ErrNotFound)

			n, err := s.CountBooks(context.Background())
			require.NoError(t, err)
			assert.Zero(t, n, "partial data must not be persisted")
		})
	}
}

func TestIngestByTitle_GutendexIDDedup(t *testing.T) {
	s := newTestStore(t)
	// Same external entry surfaced by two different search terms that the
	// title-contains check does not connect.
	entry := quijoteEntry()
	fake := &fakeSearcher{responses: []*gutendex.SearchResponse{
		searchPage(entry),
		searchPage(entry),
	}}
	in := NewIngestor(s, fake)
	ctx := context.Background()

	first, err := in.IngestByTitle(ctx, "ingenioso hidalgo", io.Discard)
	require.NoError(t, err)
	second, err := in.IngestByTitle(ctx, "caballero andante", io.Discard)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "external id must dedup across search terms")
	n, err := s.CountBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestIngestByTitle_UnrecognizedLanguageStoredAsOther(t *testing.T) {
	s := newTestStore(t)
	entry := gutendex.Book{
		ID: 77, Title: "Kalevala",
		Authors:   []gutendex.Author{{Name: "Lönnrot, Elias", BirthYear: intPtr(1802), DeathYear: intPtr(1884)}},
		Languages: []string{"fi"},
	}
	in := NewIngestor(s, &fakeSearcher{responses: []*gutendex.SearchResponse{searchPage(entry)}})

	book, err := in.IngestByTitle(context.Background(), "kalevala", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "other", book.Language)
}

func TestIngestByTitle_TransportErrorPropagates(t *testing.T) {
	s := newTestStore(t)
	transportErr := &gutendex.TransportError{URL: "https://gutendx.com/books/", Status: 503}
	in := NewIngestor(s, &fakeSearcher{err: transportErr})

	_, err := in.IngestByTitle(context.Background(), "anything", io.Discard)

	var te *gutendex.TransportError
	require.ErrorAs(t, err, &te)
	assert.NotErrorIs(t, err, ErrNotFound, "transport failure must stay distinguishable from not-found")

	n, err := s.CountBooks(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n, "failed fetch must not persist partial state")
}

func TestIngestByTitle_ParseErrorPropagates(t *testing.T) {
	s := newTestStore(t)
	in := NewIngestor(s, &fakeSearcher{err: &gutendex.ParseError{}})

	_, err := in.IngestByTitle(context.Background(), "anything", io.Discard)

	var pe *gutendex.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestIngestByTitle_BlankTitleRejectedBeforeIO(t *testing.T) {
	s := newTestStore(t)
	fake := &fakeSearcher{responses: []*gutendex.SearchResponse{searchPage()}}
	in := NewIngestor(s, fake)

	for _, title := range []string{"", "   "} {
		_, err := in.IngestByTitle(context.Background(), title, io.Discard)
		var ive *InputValidationError
		assert.ErrorAs(t, err, &ive, "title %q", title)
	}
	assert.Zero(t, fake.calls, "validation must precede any I/O")
}

func TestIngestByTitle_CleansTitleAndDownloadDefault(t *testing.T) {
	s := newTestStore(t)
	entry := gutendex.Book{
		ID:        9,
		Title:     "  La   Odisea ",
		Authors:   []gutendex.Author{{Name: "Homero"}},
		Languages: []string{"es"},
	}
	in := NewIngestor(s, &fakeSearcher{responses: []*gutendex.SearchResponse{searchPage(entry)}})

	book, err := in.IngestByTitle(context.Background(), "odisea", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "La Odisea", book.Title)
	assert.Zero(t, book.DownloadCount)
}
