// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/mariocortezBEST/literalura/internal/language"
	"github.com/mariocortezBEST/literalura/pkg/types"
)

// ExportEntry is one book joined with its author for export files.
type ExportEntry struct {
	Title        string       `json:"title" yaml:"title"`
	Language     string       `json:"language" yaml:"language"`
	LanguageName string       `json:"language_name" yaml:"language_name"`
	Downloads    int64        `json:"downloads" yaml:"downloads"`
	GutendexID   *int64       `json:"gutendex_id,omitempty" yaml:"gutendex_id,omitempty"`
	Author       ExportAuthor `json:"author" yaml:"author"`
}

// ExportAuthor holds the author fields included in each export entry.
type ExportAuthor struct {
	Name      string `json:"name" yaml:"name"`
	BirthYear *int   `json:"birth_year,omitempty" yaml:"birth_year,omitempty"`
	DeathYear *int   `json:"death_year,omitempty" yaml:"death_year,omitempty"`
	LifeSpan  string `json:"life_span" yaml:"life_span"`
}

// ExportYAML writes the full catalog to path as YAML.
func (s *Store) ExportYAML(ctx context.Context, path string) error {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the full catalog to path as indented JSON.
func (s *Store) ExportJSON(ctx context.Context, path string) error {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) exportEntries(ctx context.Context) ([]ExportEntry, error) {
	books, err := s.AllBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(books))
	for i, b := range books {
		entries[i] = exportEntry(b)
	}
	return entries, nil
}

func exportEntry(b types.Book) ExportEntry {
	e := ExportEntry{
		Title:        b.Title,
		Language:     b.Language,
		LanguageName: language.Language(b.Language).Name(),
		Downloads:    b.DownloadCount,
		GutendexID:   b.GutendexID,
	}
	if b.Author != nil {
		e.Author = ExportAuthor{
			Name:      b.Author.Name,
			BirthYear: b.Author.BirthYear,
			DeathYear: b.Author.DeathYear,
			LifeSpan:  b.Author.LifeSpan(),
		}
	}
	return e
}
