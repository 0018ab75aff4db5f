// Package cache stores rendered chart artifacts between runs.
//
// A render is keyed by everything that can change its output: the chart
// configuration, the data file contents, the output format and the raster
// scale. Re-running the CLI over unchanged inputs returns the stored bytes
// without re-rendering or shelling out to rsvg-convert.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// ArtifactKeyOpts are the render settings that distinguish artifacts built
// from the same inputs.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`

	// Variant holds render overrides applied on top of the config.
	Variant string `json:"variant,omitempty"`
}

// ArtifactKey builds the key of one rendered artifact. configHash and
// dataHash are [Hash] values of the raw config and data file bytes.
func ArtifactKey(configHash, dataHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", configHash, dataHash, opts)
}
