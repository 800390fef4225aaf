// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// Record is a single serialized value owned by a namespace.
type Record struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

// RecordStore defines the key-value persistence every repository is built on.
// A namespace isolates the records of one profile.
type RecordStore interface {
	// Get returns the record stored under key. The bool is false when no record exists.
	Get(ctx context.Context, namespace, key string) (Record, bool, error)

	// Put inserts or replaces a record.
	Put(ctx context.Context, namespace string, record Record) error

	// Delete removes a record. Deleting a missing key is not an error.
	Delete(ctx context.Context, namespace, key string) error

	// List returns every record whose key starts with prefix, ordered by key.
	List(ctx context.Context, namespace, prefix string) ([]Record, error)

	// Clear removes every record of the namespace.
	Clear(ctx context.Context, namespace string) error

	// Namespaces returns every namespace holding at least one record.
	Namespaces(ctx context.Context) ([]string, error)
}
