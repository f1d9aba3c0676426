// Package cache provides pluggable result caching for the rendering
// pipeline.
//
// A [Cache] stores opaque byte blobs under string keys with optional
// expiry. Three backends are provided: [FileCache] for CLI usage,
// [RedisCache] for shared deployments, and [NullCache] to disable
// caching. A [Keyer] derives deterministic keys for the pipeline's
// layout and artifact stages; [ScopedKeyer] prefixes keys for
// multi-tenant isolation.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is the storage interface for pipeline results.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves the value stored under key. The second return value
	// reports whether the key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes the value stored under key, if any.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// Cache lifetimes per pipeline stage. Layouts and artifacts derive
// deterministically from their inputs, so the TTLs guard disk usage,
// not staleness.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Keyer generates cache keys for pipeline stages.
type Keyer interface {
	// LayoutKey generates a key for a computed layout.
	LayoutKey(datasetHash string, opts LayoutKeyOpts) string
	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the options that affect layout computation.
type LayoutKeyOpts struct {
	Aspect float64
}

// ArtifactKeyOpts are the options that affect rendered output.
type ArtifactKeyOpts struct {
	VizType     string
	Format      string
	Style       string
	ColorsHash  string
	ColorByDest bool
	FontSize    float64
	FrameHeight float64
	Scale       float64
	Detailed    bool
}

// DefaultKeyer derives keys by hashing the stage inputs together with
// all options that affect the stage's output.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(datasetHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", datasetHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Use full SHA-256 hash (64 hex chars / 256 bits) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
