// Package store provides persistence for named datasets.
//
// This package defines the storage interface used by the API server to
// save and look up observation datasets, with implementations for
// different backends:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for production deployments
//
// Records are value-like: implementations return them as stored and
// callers must not mutate a record after handing it to Put.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/flowribbon/pkg/sankey"
)

// ErrNotFound is returned when a dataset record does not exist.
var ErrNotFound = errors.New("dataset not found")

// Record is a stored dataset with identity and bookkeeping metadata.
type Record struct {
	ID        string          `json:"id" bson:"_id"`
	Name      string          `json:"name" bson:"name"`
	Dataset   *sankey.Dataset `json:"dataset" bson:"dataset"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
}

// NewRecord creates a record with a fresh ID and creation timestamp.
func NewRecord(name string, d *sankey.Dataset) *Record {
	return &Record{
		ID:        uuid.NewString(),
		Name:      name,
		Dataset:   d,
		CreatedAt: time.Now().UTC(),
	}
}

// Store is the interface for dataset storage backends.
type Store interface {
	// Put stores a record, replacing any record with the same ID.
	Put(ctx context.Context, rec *Record) error

	// Get retrieves a record by ID.
	// Returns ErrNotFound if no record exists.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns all records ordered by creation time.
	List(ctx context.Context) ([]*Record, error)

	// Delete removes a record.
	// Returns ErrNotFound if no record exists.
	Delete(ctx context.Context, id string) error

	// Close releases resources held by the store.
	Close(ctx context.Context) error
}
