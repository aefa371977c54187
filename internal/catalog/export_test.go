// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestExportYAML(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)

	path := filepath.Join(t.TempDir(), "export.yaml")
	require.NoError(t, s.ExportYAML(context.Background(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []ExportEntry
	require.NoError(t, yaml.Unmarshal(data, &entries))
	require.Len(t, entries, 4)

	assert.Equal(t, "Don Quijote", entries[0].Title)
	assert.Equal(t, "es", entries[0].Language)
	assert.Equal(t, "Spanish", entries[0].LanguageName)
	assert.Equal(t, "Cervantes Saavedra, Miguel de", entries[0].Author.Name)
	assert.Equal(t, "(1547 - 1616)", entries[0].Author.LifeSpan)
	require.NotNil(t, entries[0].GutendexID)
	assert.Equal(t, int64(2000), *entries[0].GutendexID)
}

func TestExportJSON(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)

	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, s.ExportJSON(context.Background(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []ExportEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 4)

	// Emma has no external identifier; omitempty keeps it out of the file.
	assert.Nil(t, entries[2].GutendexID)
	assert.Equal(t, "English", entries[2].LanguageName)
}

func TestExportEmptyCatalog(t *testing.T) {
	s := newTestStore(t)

	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, s.ExportJSON(context.Background(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []ExportEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	assert.Empty(t, entries)
}
