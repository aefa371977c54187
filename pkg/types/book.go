// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration and the persistent domain model shared
// across the ingestion pipeline, the query layer, and the CLI.
package types

import "fmt"

// Author is a persisted author row. Authors are created once per distinct
// name during ingestion and never updated or deleted afterwards.
type Author struct {
	// ID is the surrogate database identifier.
	ID int64 `json:"id" yaml:"id"`

	// Name is the author name as reported by the catalog, whitespace
	// normalized. Unique case-insensitively.
	Name string `json:"name" yaml:"name"`

	// BirthYear is nil when the catalog does not report it.
	BirthYear *int `json:"birth_year" yaml:"birth_year"`

	// DeathYear is nil when the author is presumed alive or the year is
	// unknown.
	DeathYear *int `json:"death_year" yaml:"death_year"`
}

// AliveIn reports whether the author was alive in the given year. Unknown
// birth year means the question cannot be answered and yields false. A nil
// death year counts as still alive. The death year itself counts as alive:
// an author who died in 1850 was alive in 1850.
func (a Author) AliveIn(year int) bool {
	if a.BirthYear == nil || *a.BirthYear > year {
		return false
	}
	if a.DeathYear == nil {
		return true
	}
	return *a.DeathYear >= year
}

// LifeSpan renders the author's life years, e.g. "(1800 - 1850)".
// Unknown years render as "?" and a missing death year as "present".
func (a Author) LifeSpan() string {
	if a.BirthYear == nil && a.DeathYear == nil {
		return "(? - ?)"
	}
	birth := "?"
	if a.BirthYear != nil {
		birth = fmt.Sprintf("%d", *a.BirthYear)
	}
	death := "present"
	if a.DeathYear != nil {
		death = fmt.Sprintf("%d", *a.DeathYear)
	}
	return fmt.Sprintf("(%s - %s)", birth, death)
}

// Book is a persisted book row. Books are created once per distinct
// (title, author) pair and never updated afterwards.
type Book struct {
	// ID is the surrogate database identifier.
	ID int64 `json:"id" yaml:"id"`

	// Title is the book title, whitespace normalized.
	Title string `json:"title" yaml:"title"`

	// Language is the normalized language code (e.g. "es", "en", "other").
	Language string `json:"language" yaml:"language"`

	// DownloadCount is the download count reported at ingestion time,
	// defaulted to 0 when the catalog omitted it.
	DownloadCount int64 `json:"download_count" yaml:"download_count"`

	// Author is the owning author. Required: the pipeline never persists
	// a book without one.
	Author *Author `json:"author" yaml:"author"`

	// GutendexID is the external catalog identifier, nil when the catalog
	// omitted it. Unique when present.
	GutendexID *int64 `json:"gutendex_id" yaml:"gutendex_id"`
}
