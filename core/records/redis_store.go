package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps one JSON value per record, a secondary key per external id
// and a set of all ids for scans.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Store whose keys are namespaced by table.
func NewRedisStore(client *redis.Client, table string) *RedisStore {
	return &RedisStore{client: client, prefix: "todo-sync:" + table + ":"}
}

// RecordKey returns the key holding the record JSON.
func (s *RedisStore) RecordKey(id string) string {
	return s.prefix + "rec:" + id
}

// ExternalKey returns the index key mapping an external id to a record id.
func (s *RedisStore) ExternalKey(externalID string) string {
	return s.prefix + "ext:" + externalID
}

// IDsKey returns the key of the set of all record ids.
func (s *RedisStore) IDsKey() string {
	return s.prefix + "ids"
}

func (s *RedisStore) FindByExternalID(ctx context.Context, externalID string) (*Record, error) {
	id, err := s.client.Get(ctx, s.ExternalKey(externalID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read external index %s: %w", externalID, err)
	}

	data, err := s.client.Get(ctx, s.RecordKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Index points at a record that no longer exists
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record %s: %w", id, err)
	}

	var rec Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record %s: %w", id, err)
	}
	return &rec, nil
}

func (s *RedisStore) Upsert(ctx context.Context, rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record %s: %w", rec.ID, err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.RecordKey(rec.ID), string(data), 0)
		pipe.SAdd(ctx, s.IDsKey(), rec.ID)
		if rec.IsLinked() {
			pipe.Set(ctx, s.ExternalKey(*rec.ExternalRecordID), rec.ID, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to upsert record %s: %w", rec.ID, err)
	}
	return nil
}

func (s *RedisStore) ScanAll(ctx context.Context) ([]Record, error) {
	ids, err := s.client.SMembers(ctx, s.IDsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list record ids: %w", err)
	}
	if len(ids) == 0 {
		return []Record{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.RecordKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	all := make([]Record, 0, len(values))
	for i, v := range values {
		str, ok := v.(string)
		if !ok {
			// Missing key
			continue
		}
		var rec Record
		if err := json.Unmarshal([]byte(str), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record %s: %w", ids[i], err)
		}
		all = append(all, rec)
	}
	return all, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
