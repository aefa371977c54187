// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mariocortezBEST/literalura/pkg/types"
)

// The methods in this file are the read-only reporting surface. They never
// mutate state; invalid arguments are rejected with *InputValidationError
// before any query runs.

// AllBooks returns every stored book with its author, in insertion order.
func (s *Store) AllBooks(ctx context.Context) ([]types.Book, error) {
	return s.queryBooks(ctx,
		`SELECT `+bookColumns+`
		 FROM libros l JOIN autores a ON a.id = l.autor_id
		 ORDER BY l.id`)
}

// BooksByLanguage returns books whose normalized language code matches
// exactly.
func (s *Store) BooksByLanguage(ctx context.Context, code string) ([]types.Book, error) {
	code = strings.TrimSpace(strings.ToLower(code))
	if code == "" {
		return nil, &InputValidationError{Field: "language", Reason: "must not be blank"}
	}
	return s.queryBooks(ctx,
		`SELECT `+bookColumns+`
		 FROM libros l JOIN autores a ON a.id = l.autor_id
		 WHERE l.idioma = ?
		 ORDER BY l.id`, code)
}

// TopBooksByDownloads returns the n most-downloaded books in descending
// order, ties broken by insertion order.
func (s *Store) TopBooksByDownloads(ctx context.Context, n int) ([]types.Book, error) {
	if n <= 0 {
		return nil, &InputValidationError{Field: "limit", Reason: "must be positive"}
	}
	return s.queryBooks(ctx,
		`SELECT `+bookColumns+`
		 FROM libros l JOIN autores a ON a.id = l.autor_id
		 ORDER BY l.numero_descargas DESC, l.id ASC
		 LIMIT ?`, n)
}

// AllAuthors returns every stored author ordered by name.
func (s *Store) AllAuthors(ctx context.Context) ([]types.Author, error) {
	return s.queryAuthors(ctx,
		`SELECT id, nombre, ano_nacimiento, ano_fallecimiento
		 FROM autores ORDER BY nombre`)
}

// AuthorsByName returns authors whose name contains the given text,
// case-insensitively.
func (s *Store) AuthorsByName(ctx context.Context, name string) ([]types.Author, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &InputValidationError{Field: "name", Reason: "must not be blank"}
	}
	return s.queryAuthors(ctx,
		`SELECT id, nombre, ano_nacimiento, ano_fallecimiento
		 FROM autores WHERE nombre LIKE '%' || ? || '%'
		 ORDER BY nombre`, name)
}

// AuthorsAliveIn returns authors alive in the given year. The SQL mirrors
// Author.AliveIn: unknown birth years are excluded, a missing death year
// counts as alive, and the death year itself counts as alive.
func (s *Store) AuthorsAliveIn(ctx context.Context, year int) ([]types.Author, error) {
	if year < 0 {
		return nil, &InputValidationError{Field: "year", Reason: "must not be negative"}
	}
	return s.queryAuthors(ctx,
		`SELECT id, nombre, ano_nacimiento, ano_fallecimiento
		 FROM autores
		 WHERE ano_nacimiento IS NOT NULL AND ano_nacimiento <= ?
		   AND (ano_fallecimiento IS NULL OR ano_fallecimiento >= ?)
		 ORDER BY nombre`, year, year)
}

// AuthorsByBirthYearRange returns authors born between start and end,
// inclusive on both bounds.
func (s *Store) AuthorsByBirthYearRange(ctx context.Context, start, end int) ([]types.Author, error) {
	if start < 0 || end < 0 {
		return nil, &InputValidationError{Field: "year range", Reason: "years must not be negative"}
	}
	if start > end {
		return nil, &InputValidationError{Field: "year range", Reason: "start must not exceed end"}
	}
	return s.queryAuthors(ctx,
		`SELECT id, nombre, ano_nacimiento, ano_fallecimiento
		 FROM autores
		 WHERE ano_nacimiento BETWEEN ? AND ?
		 ORDER BY ano_nacimiento, nombre`, start, end)
}

// CountBooks returns the number of stored books.
func (s *Store) CountBooks(ctx context.Context) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM libros`)
}

// CountAuthors returns the number of stored authors.
func (s *Store) CountAuthors(ctx context.Context) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM autores`)
}

// LanguageCount is one row of the per-language aggregate.
type LanguageCount struct {
	Language string `json:"language" yaml:"language"`
	Count    int64  `json:"count" yaml:"count"`
}

// CountBooksByLanguage groups stored books by normalized language code,
// most common first.
func (s *Store) CountBooksByLanguage(ctx context.Context) ([]LanguageCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT idioma, COUNT(*) FROM libros
		 GROUP BY idioma
		 ORDER BY COUNT(*) DESC, idioma ASC`)
	if err != nil {
		return nil, fmt.Errorf("counting books by language: %w", err)
	}
	defer rows.Close()

	var counts []LanguageCount
	for rows.Next() {
		var lc LanguageCount
		if err := rows.Scan(&lc.Language, &lc.Count); err != nil {
			return nil, fmt.Errorf("scanning language count: %w", err)
		}
		counts = append(counts, lc)
	}
	return counts, rows.Err()
}

// CenturyCount is one row of the per-birth-century aggregate. Century is
// the floored start of the hundred-year span (1867 → 1800).
type CenturyCount struct {
	Century int   `json:"century" yaml:"century"`
	Count   int64 `json:"count" yaml:"count"`
}

// CountAuthorsByCentury groups authors by birth century, earliest first.
// Authors with an unknown birth year are excluded. Grouping happens in Go
// because SQLite integer division truncates toward zero rather than
// flooring, which misplaces years before the common era.
func (s *Store) CountAuthorsByCentury(ctx context.Context) ([]CenturyCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ano_nacimiento FROM autores WHERE ano_nacimiento IS NOT NULL`)
	if err != nil {
		return nil, fmt.Errorf("counting authors by century: %w", err)
	}
	defer rows.Close()

	byCentury := make(map[int]int64)
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("scanning birth year: %w", err)
		}
		byCentury[centuryOf(year)]++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	counts := make([]CenturyCount, 0, len(byCentury))
	for century, count := range byCentury {
		counts = append(counts, CenturyCount{Century: century, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Century < counts[j].Century })
	return counts, nil
}

// centuryOf floors year to the start of its hundred-year span.
func centuryOf(year int) int {
	c := year / 100
	if year < 0 && year%100 != 0 {
		c--
	}
	return c * 100
}

func (s *Store) queryBooks(ctx context.Context, query string, args ...any) ([]types.Book, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()

	var books []types.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		books = append(books, *book)
	}
	return books, rows.Err()
}

func (s *Store) queryAuthors(ctx context.Context, query string, args ...any) ([]types.Author, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying authors: %w", err)
	}
	defer rows.Close()

	var authors []types.Author
	for rows.Next() {
		author, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning author: %w", err)
		}
		authors = append(authors, *author)
	}
	return authors, rows.Err()
}

func (s *Store) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting rows: %w", err)
	}
	return n, nil
}
