// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gutendex

import (
	"fmt"
	"strings"
)

// SearchResponse is one page of a Gutendex search. Count is the advisory
// total across all pages; len(Results) is the authoritative number of
// entries actually present. Unknown JSON fields are ignored.
type SearchResponse struct {
	Count    int      `json:"count"`
	Next     *string  `json:"next"`
	Previous *string  `json:"previous"`
	Results  []Book   `json:"results"`
}

// HasResults reports whether the page contains at least one entry.
func (r *SearchResponse) HasResults() bool {
	return len(r.Results) > 0
}

// FirstBook returns the first entry of the page. Searches take only the
// first result; the rest are discarded.
func (r *SearchResponse) FirstBook() (Book, bool) {
	if len(r.Results) == 0 {
		return Book{}, false
	}
	return r.Results[0], true
}

// HasMorePages reports whether the catalog advertises a next page.
func (r *SearchResponse) HasMorePages() bool {
	return r.Next != nil && *r.Next != ""
}

// Book is one catalog entry as reported by the API.
type Book struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Authors       []Author          `json:"authors"`
	Languages     []string          `json:"languages"`
	DownloadCount int64             `json:"download_count"`
	Subjects      []string          `json:"subjects"`
	Formats       map[string]string `json:"formats"`
}

// FirstAuthor returns the first listed author.
func (b Book) FirstAuthor() (Author, bool) {
	if len(b.Authors) == 0 {
		return Author{}, false
	}
	return b.Authors[0], true
}

// FirstLanguage returns the first listed language code, which is the
// authoritative one.
func (b Book) FirstLanguage() (string, bool) {
	if len(b.Languages) == 0 {
		return "", false
	}
	return b.Languages[0], true
}

// Usable reports whether the entry carries enough data to persist: a
// non-blank title, at least one author, and at least one language.
// Entries failing this check are skipped rather than stored partially.
func (b Book) Usable() bool {
	return strings.TrimSpace(b.Title) != "" && len(b.Authors) > 0 && len(b.Languages) > 0
}

// CleanTitle returns the title with surrounding whitespace trimmed and
// inner runs of whitespace collapsed to single spaces.
func (b Book) CleanTitle() string {
	return strings.Join(strings.Fields(b.Title), " ")
}

// SafeDownloadCount returns the download count, clamped to zero when the
// catalog omitted it or reported a negative value.
func (b Book) SafeDownloadCount() int64 {
	if b.DownloadCount < 0 {
		return 0
	}
	return b.DownloadCount
}

// Author is one catalog author with optional life years.
type Author struct {
	Name      string `json:"name"`
	BirthYear *int   `json:"birth_year"`
	DeathYear *int   `json:"death_year"`
}

// CleanName returns the name with whitespace normalized.
func (a Author) CleanName() string {
	return strings.Join(strings.Fields(a.Name), " ")
}

// AliveIn reports whether the author was alive in the given year, using
// the same rule as the persistent model: unknown birth year yields false,
// a missing death year counts as still alive, and the death year itself
// counts as alive.
func (a Author) AliveIn(year int) bool {
	if a.BirthYear == nil || *a.BirthYear > year {
		return false
	}
	if a.DeathYear == nil {
		return true
	}
	return *a.DeathYear >= year
}

// LifeSpan renders the author's life years for display, e.g. "(1800 - 1850)".
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
