// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists books and authors to a local SQLite database
// and runs the ingestion pipeline and read-only reporting queries on top
// of it.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mariocortezBEST/literalura/pkg/types"
)

// Store manages the catalog SQLite database. It is the only component
// that mutates state; every write goes through ResolveAuthor or SaveBook.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the catalog database at cfg.Path and creates
// the schema if it does not exist. ":memory:" opens an in-memory database
// for tests.
func NewStore(cfg types.StorageConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = "literalura.db"
	}

	dsn := path + "?_foreign_keys=on"
	if path != ":memory:" {
		dsn += "&_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == ":memory:" {
		// Every pool connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS autores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nombre TEXT NOT NULL CHECK(length(nombre) <= 255),
			ano_nacimiento INTEGER,
			ano_fallecimiento INTEGER
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_autores_nombre
			ON autores(nombre COLLATE NOCASE)`,
		`CREATE TABLE IF NOT EXISTS libros (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			titulo TEXT NOT NULL CHECK(length(titulo) <= 500),
			idioma TEXT NOT NULL CHECK(length(idioma) <= 10),
			numero_descargas INTEGER CHECK(numero_descargas >= 0),
			autor_id INTEGER NOT NULL REFERENCES autores(id),
			gutendx_id INTEGER UNIQUE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_libros_autor_id ON libros(autor_id)`,
		`CREATE INDEX IF NOT EXISTS idx_libros_idioma ON libros(idioma)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// ResolveAuthor returns the stored author matching name (case-insensitive
// exact match) or creates one with the given life years. A found author is
// returned unchanged: candidate years are discarded without reconciliation.
// The unique index on nombre makes concurrent calls for the same name
// converge on a single row instead of creating duplicates.
func (s *Store) ResolveAuthor(ctx context.Context, name string, birthYear, deathYear *int) (*types.Author, error) {
	clean := strings.Join(strings.Fields(name), " ")
	if clean == "" {
		return nil, &InputValidationError{Field: "author name", Reason: "must not be blank"}
	}

	author, err := scanAuthor(s.db.QueryRowContext(ctx,
		`SELECT id, nombre, ano_nacimiento, ano_fallecimiento
		 FROM autores WHERE nombre = ? COLLATE NOCASE`, clean))
	if err == nil {
		return author, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("looking up author %q: %w", clean, err)
	}

	// The no-op update makes RETURNING yield the surviving row when a
	// concurrent insert won the name.
	author, err = scanAuthor(s.db.QueryRowContext(ctx,
		`INSERT INTO autores (nombre, ano_nacimiento, ano_fallecimiento)
		 VALUES (?, ?, ?)
		 ON CONFLICT(nombre COLLATE NOCASE) DO UPDATE SET nombre = nombre
		 RETURNING id, nombre, ano_nacimiento, ano_fallecimiento`,
		clean, birthYear, deathYear))
	if err != nil {
		return nil, fmt.Errorf("creating author %q: %w", clean, err)
	}
	return author, nil
}

const bookColumns = `l.id, l.titulo, l.idioma, l.numero_descargas, l.gutendx_id,
	a.id, a.nombre, a.ano_nacimiento, a.ano_fallecimiento`

// FindBookByTitleContains returns the earliest-inserted book whose title
// contains the given text, case-insensitively. The second return value
// reports whether a match exists.
func (s *Store) FindBookByTitleContains(ctx context.Context, title string) (*types.Book, bool, error) {
	book, err := scanBook(s.db.QueryRowContext(ctx,
		`SELECT `+bookColumns+`
		 FROM libros l JOIN autores a ON a.id = l.autor_id
		 WHERE l.titulo LIKE '%' || ? || '%'
		 ORDER BY l.id LIMIT 1`, strings.TrimSpace(title)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("looking up book by title: %w", err)
	}
	return book, true, nil
}

// FindBookByGutendexID returns the book stored under the given external
// catalog identifier, if any.
func (s *Store) FindBookByGutendexID(ctx context.Context, id int64) (*types.Book, bool, error) {
	book, err := scanBook(s.db.QueryRowContext(ctx,
		`SELECT `+bookColumns+`
		 FROM libros l JOIN autores a ON a.id = l.autor_id
		 WHERE l.gutendx_id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("looking up book by gutendex id: %w", err)
	}
	return book, true, nil
}

// SaveBook inserts the book and fills in its surrogate ID. The caller must
// set Author to a resolved, persisted author. Books are never updated once
// created.
func (s *Store) SaveBook(ctx context.Context, book *types.Book) error {
	if book.Author == nil || book.Author.ID == 0 {
		return &InputValidationError{Field: "author", Reason: "book requires a persisted author"}
	}

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO libros (titulo, idioma, numero_descargas, autor_id, gutendx_id)
		 VALUES (?, ?, ?, ?, ?)
		 RETURNING id`,
		book.Title, book.Language, book.DownloadCount, book.Author.ID, book.GutendexID,
	).Scan(&book.ID)
	if err != nil {
		return fmt.Errorf("saving book %q: %w", book.Title, err)
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuthor(row rowScanner) (*types.Author, error) {
	var (
		a     types.Author
		birth sql.NullInt64
		death sql.NullInt64
	)
	if err := row.Scan(&a.ID, &a.Name, &birth, &death); err != nil {
		return nil, err
	}
	a.BirthYear = nullableYear(birth)
	a.DeathYear = nullableYear(death)
	return &a, nil
}

func scanBook(row rowScanner) (*types.Book, error) {
	var (
		b         types.Book
		a         types.Author
		downloads sql.NullInt64
		gutendex  sql.NullInt64
		birth     sql.NullInt64
		death     sql.NullInt64
	)
	if err := row.Scan(
		&b.ID, &b.Title, &b.Language, &downloads, &gutendex,
		&a.ID, &a.Name, &birth, &death,
	); err != nil {
		return nil, err
	}
	if downloads.Valid {
		b.DownloadCount = downloads.Int64
	}
	if gutendex.Valid {
		b.GutendexID = &gutendex.Int64
	}
	a.BirthYear = nullableYear(birth)
	a.DeathYear = nullableYear(death)
	b.Author = &a
	return &b, nil
}

func nullableYear(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	year := int(v.Int64)
	return &year
}
