// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the overall HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "literalura/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CatalogConfig holds settings for the external bibliographic catalog client.
type CatalogConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL overrides the catalog search endpoint. Empty means the
	// built-in Gutendex endpoint.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// MaxRetries is the number of retry attempts on HTTP 429 (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// RequestsPerSecond caps the request rate against the catalog API
	// (default 2).
	RequestsPerSecond int `json:"requests_per_second" yaml:"requests_per_second"`
}

// StorageConfig holds settings for the local catalog database.
type StorageConfig struct {
	// Path is the SQLite database file. ":memory:" opens an in-memory
	// database, which tests use.
	Path string `json:"path" yaml:"path"`
}

// QueryConfig holds defaults for read-only catalog queries.
type QueryConfig struct {
	// TopN is the default size of the most-downloaded listing (default 10).
	TopN int `json:"top_n" yaml:"top_n"`
}

// Config groups all component configurations.
type Config struct {
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Query   QueryConfig   `json:"query" yaml:"query"`
}
