package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
)

const (
	redisNamespaceKeyPrefix = "ibadah:ns:"
	redisNamespaceIndexKey  = "ibadah:namespaces"
)

// redisEnvelope is the stored form of a record inside a namespace hash.
type redisEnvelope struct {
	Value     json.RawMessage `json:"v"`
	UpdatedAt time.Time       `json:"u"`
}

// redisRecordStore implements the adapter.RecordStore interface with one hash per namespace.
type redisRecordStore struct {
	client *redis.Client
}

// NewRedisRecordStore creates a record store backed by Redis hashes.
func NewRedisRecordStore(client *redis.Client) adapter.RecordStore {
	return &redisRecordStore{
		client: client,
	}
}

func namespaceHashKey(namespace string) string {
	return redisNamespaceKeyPrefix + namespace
}

// Get retrieves a record by namespace and key.
func (s *redisRecordStore) Get(ctx context.Context, namespace, key string) (adapter.Record, bool, error) {
	raw, err := s.client.HGet(ctx, namespaceHashKey(namespace), key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return adapter.Record{}, false, nil
		}
		return adapter.Record{}, false, err
	}
	return decodeEnvelope(key, raw), true, nil
}

// Put inserts or replaces a record.
func (s *redisRecordStore) Put(ctx context.Context, namespace string, record adapter.Record) error {
	payload, err := encodeEnvelope(record)
	if err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, namespaceHashKey(namespace), record.Key, payload)
	pipe.SAdd(ctx, redisNamespaceIndexKey, namespace)
	_, err = pipe.Exec(ctx)
	return err
}

// Delete removes a record.
func (s *redisRecordStore) Delete(ctx context.Context, namespace, key string) error {
	return s.client.HDel(ctx, namespaceHashKey(namespace), key).Err()
}

// List returns the namespace's records whose key starts with prefix.
func (s *redisRecordStore) List(ctx context.Context, namespace, prefix string) ([]adapter.Record, error) {
	fields, err := s.client.HGetAll(ctx, namespaceHashKey(namespace)).Result()
	if err != nil {
		return nil, err
	}

	records := make([]adapter.Record, 0, len(fields))
	for key, raw := range fields {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		records = append(records, decodeEnvelope(key, []byte(raw)))
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Key < records[j].Key })
	return records, nil
}

// Clear removes every record of the namespace.
func (s *redisRecordStore) Clear(ctx context.Context, namespace string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, namespaceHashKey(namespace))
	pipe.SRem(ctx, redisNamespaceIndexKey, namespace)
	_, err := pipe.Exec(ctx)
	return err
}

// Namespaces returns every namespace that holds records.
func (s *redisRecordStore) Namespaces(ctx context.Context) ([]string, error) {
	members, err := s.client.SMembers(ctx, redisNamespaceIndexKey).Result()
	if err != nil {
		return nil, err
	}
	namespaces := make([]string, 0, len(members))
	for _, ns := range members {
		n, err := s.client.HLen(ctx, namespaceHashKey(ns)).Result()
		if err != nil {
			return nil, err
		}
		if n > 0 {
			namespaces = append(namespaces, ns)
		}
	}
	sort.Strings(namespaces)
	return namespaces, nil
}

func encodeEnvelope(record adapter.Record) ([]byte, error) {
	value := record.Value
	if !json.Valid(value) {
		// Keep unparsable payloads readable as a JSON string so the envelope stays valid.
		quoted, err := json.Marshal(string(value))
		if err != nil {
			return nil, fmt.Errorf("failed to encode record %s: %w", record.Key, err)
		}
		value = quoted
	}
	return json.Marshal(redisEnvelope{Value: value, UpdatedAt: record.UpdatedAt.UTC()})
}

func decodeEnvelope(key string, raw []byte) adapter.Record {
	var env redisEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		slog.Warn("Unreadable redis record envelope", "key", key, "error", err)
		return adapter.Record{Key: key, Value: raw}
	}
	return adapter.Record{Key: key, Value: []byte(env.Value), UpdatedAt: env.UpdatedAt}
}
