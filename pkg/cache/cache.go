// Package cache provides result caching for the massing pipeline.
//
// Solving and optimizing a room program is deterministic, so a program hash
// plus the run options fully identifies the output. The pipeline caches the
// solved records and each rendered artifact under such keys; re-rendering the
// same program into another format then reuses the solved batch instantly.
//
// Two backends are provided: a file cache under the user cache directory for
// the CLI, and a null cache that disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache TTLs per entry kind. Solved records are pure functions of their key
// and could live forever; bounded TTLs keep the cache directory from growing
// without limit.
const (
	TTLRecords  = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL stores without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// RecordsKeyOpts are the run options that affect solved records.
type RecordsKeyOpts struct {
	ModuleCM      float64
	HeightCM      float64
	AreaTolerance float64
	MaxPasses     int
}

// ArtifactKeyOpts are the options that affect a rendered artifact.
type ArtifactKeyOpts struct {
	Format string
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// RecordsKey generates a key for a solved record batch.
	RecordsKey(programHash string, opts RecordsKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(recordsHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// RecordsKey generates a key for a solved record batch.
func (k *DefaultKeyer) RecordsKey(programHash string, opts RecordsKeyOpts) string {
	return hashKey("records", programHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(recordsHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", recordsHash, opts)
}
