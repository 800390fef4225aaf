package adapter

import "context"

// SyncRemote is the remote copy of a namespace's records.
type SyncRemote interface {
	// Push replaces the remote bundle of the namespace.
	Push(ctx context.Context, namespace string, records []Record) error

	// Pull returns the remote bundle of the namespace. An unknown namespace yields no records.
	Pull(ctx context.Context, namespace string) ([]Record, error)
}
