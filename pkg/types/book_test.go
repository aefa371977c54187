// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func intPtr(v int) *int { return &v }

func TestAuthorAliveIn(t *testing.T) {
	tests := []struct {
		name   string
		author Author
		year   int
		want   bool
	}{
		{"mid-life", Author{BirthYear: intPtr(1800), DeathYear: intPtr(1850)}, 1825, true},
		{"death year counts as alive", Author{BirthYear: intPtr(1800), DeathYear: intPtr(1850)}, 1850, true},
		{"before birth", Author{BirthYear: intPtr(1800), DeathYear: intPtr(1850)}, 1799, false},
		{"after death", Author{BirthYear: intPtr(1800), DeathYear: intPtr(1850)}, 1851, false},
		{"no death year means alive", Author{BirthYear: intPtr(1900)}, 2024, true},
		{"unknown birth year", Author{DeathYear: intPtr(1850)}, 1825, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.author.AliveIn(tt.year); got != tt.want {
				t.Errorf("AliveIn(%d) = %v, want %v", tt.year, got, tt.want)
			}
		})
	}
}

func TestAuthorLifeSpan(t *testing.T) {
	tests := []struct {
		name   string
		author Author
		want   string
	}{
		{"both known", Author{BirthYear: intPtr(1547), DeathYear: intPtr(1616)}, "(1547 - 1616)"},
		{"still alive", Author{BirthYear: intPtr(1950)}, "(1950 - present)"},
		{"both unknown", Author{}, "(? - ?)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.author.LifeSpan(); got != tt.want {
				t.Errorf("LifeSpan() = %q, want %q", got, tt.want)
			}
		})
	}
}
