// File: services/intelligence/contextStore.go
package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// PromptRecord is one past exchange kept so follow-up generations can be
// grounded in what the staff member already asked for.
type PromptRecord struct {
	Kind      string `json:"kind"`
	Prompt    string `json:"prompt"`
	Response  string `json:"response"`
	Timestamp int64  `json:"timestamp"`
}

const (
	contextKeyPrefix = "ai:ctx:"
	contextTTL       = 24 * time.Hour
	maxRecords       = 10
)

type RedisContextStore struct {
	client *redis.Client
}

func NewRedisContextStore(client *redis.Client) *RedisContextStore {
	return &RedisContextStore{client: client}
}

func (s *RedisContextStore) key(staffID string) string {
	return contextKeyPrefix + staffID
}

func (s *RedisContextStore) Get(ctx context.Context, staffID string) ([]PromptRecord, error) {
	data, err := s.client.Get(ctx, s.key(staffID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get AI context: %w", err)
	}
	var records []PromptRecord
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, fmt.Errorf("failed to decode AI context: %w", err)
	}
	return records, nil
}

func (s *RedisContextStore) Append(ctx context.Context, staffID string, rec PromptRecord) error {
	records, err := s.Get(ctx, staffID)
	if err != nil {
		return err
	}
	records = append(records, rec)
	if len(records) > maxRecords {
		records = records[len(records)-maxRecords:]
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode AI context: %w", err)
	}
	if err := s.client.Set(ctx, s.key(staffID), data, contextTTL).Err(); err != nil {
		return fmt.Errorf("failed to store AI context: %w", err)
	}
	return nil
}

func (s *RedisContextStore) Clear(ctx context.Context, staffID string) error {
	return s.client.Del(ctx, s.key(staffID)).Err()
}
