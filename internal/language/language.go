// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package language normalizes catalog language tags to a closed enumeration.
package language

import "strings"

// Language is a normalized language value. The underlying string is the
// code stored in the database (at most 10 characters).
type Language string

const (
	Spanish    Language = "es"
	English    Language = "en"
	French     Language = "fr"
	German     Language = "de"
	Portuguese Language = "pt"
	Italian    Language = "it"
	Latin      Language = "la"

	// Other is the catch-all for unrecognized or missing codes.
	Other Language = "other"
)

// names maps each Language to its display name. Kept consistent with
// Resolve: round-tripping a recognized code reproduces the same value.
var names = map[Language]string{
	Spanish:    "Spanish",
	English:    "English",
	French:     "French",
	German:     "German",
	Portuguese: "Portuguese",
	Italian:    "Italian",
	Latin:      "Latin",
	Other:      "Other",
}

// Resolve maps a raw catalog language tag to a Language. Matching is
// case-insensitive and tolerant of surrounding whitespace; both 2-letter
// codes and English names are recognized. Anything else, including an
// empty tag, resolves to Other. Resolve never fails.
func Resolve(code string) Language {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "es", "spanish":
		return Spanish
	case "en", "english":
		return English
	case "fr", "french":
		return French
	case "de", "german":
		return German
	case "pt", "portuguese":
		return Portuguese
	case "it", "italian":
		return Italian
	case "la", "latin":
		return Latin
	default:
		return Other
	}
}

// Code returns the normalized code persisted in the database.
func (l Language) Code() string {
	return string(l)
}

// Name returns the human-readable language name used for display.
func (l Language) Name() string {
	if name, ok := names[l]; ok {
		return name
	}
	return names[Other]
}

// Recognized lists every Language except Other, in display order.
func Recognized() []Language {
	return []Language{Spanish, English, French, German, Portuguese, Italian, Latin}
}
