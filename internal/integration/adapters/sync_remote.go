package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
)

type bundleRecord struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// RedisSyncRemote keeps each namespace's bundle as one JSON document in Redis.
type RedisSyncRemote struct {
	client *redis.Client
	prefix string
}

// NewRedisSyncRemote creates a sync remote storing bundles under prefix.
func NewRedisSyncRemote(client *redis.Client, prefix string) *RedisSyncRemote {
	return &RedisSyncRemote{
		client: client,
		prefix: prefix,
	}
}

// Push replaces the remote bundle of the namespace.
func (r *RedisSyncRemote) Push(ctx context.Context, namespace string, records []adapter.Record) error {
	bundle := make([]bundleRecord, 0, len(records))
	for _, rec := range records {
		value := json.RawMessage(rec.Value)
		if !json.Valid(value) {
			continue
		}
		bundle = append(bundle, bundleRecord{Key: rec.Key, Value: value, UpdatedAt: rec.UpdatedAt.UTC()})
	}

	payload, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to encode sync bundle: %w", err)
	}
	if err := r.client.Set(ctx, r.prefix+namespace, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to push sync bundle: %w", err)
	}
	return nil
}

// Pull returns the remote bundle of the namespace.
func (r *RedisSyncRemote) Pull(ctx context.Context, namespace string) ([]adapter.Record, error) {
	payload, err := r.client.Get(ctx, r.prefix+namespace).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pull sync bundle: %w", err)
	}

	var bundle []bundleRecord
	if err := json.Unmarshal(payload, &bundle); err != nil {
		return nil, fmt.Errorf("failed to decode sync bundle: %w", err)
	}

	records := make([]adapter.Record, 0, len(bundle))
	for _, b := range bundle {
		records = append(records, adapter.Record{Key: b.Key, Value: []byte(b.Value), UpdatedAt: b.UpdatedAt})
	}
	return records, nil
}
