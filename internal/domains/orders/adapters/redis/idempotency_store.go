// Package redis stores idempotency keys in Redis so replay protection works
// across API replicas.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/qashop/storefront-api/internal/domains/orders/ports"
)

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)

const keyPrefix = "idemp:orders:"

// IdempotencyStore keeps records under a TTL; an expired key simply allows
// the submission to be processed again.
type IdempotencyStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewIdempotencyStore(rdb *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb, ttl: ttl}
}

type storedRecord struct {
	RequestHash  string    `json:"requestHash"`
	OrderNumbers []string  `json:"orderNumbers"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (s *IdempotencyStore) Get(ctx context.Context, key string) (*ports.IdempotencyRecord, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get idempotency key: %w", err)
	}
	var stored storedRecord
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("decode idempotency record: %w", err)
	}
	return &ports.IdempotencyRecord{
		Key:          key,
		RequestHash:  stored.RequestHash,
		OrderNumbers: stored.OrderNumbers,
		CreatedAt:    stored.CreatedAt,
	}, nil
}

func (s *IdempotencyStore) Save(ctx context.Context, record ports.IdempotencyRecord) (*ports.IdempotencyRecord, error) {
	payload, err := json.Marshal(storedRecord{
		RequestHash:  record.RequestHash,
		OrderNumbers: record.OrderNumbers,
		CreatedAt:    record.CreatedAt,
	})
	if err != nil {
		return nil, err
	}
	ok, err := s.rdb.SetNX(ctx, keyPrefix+record.Key, payload, s.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("redis save idempotency key: %w", err)
	}
	if ok {
		saved := record
		return &saved, nil
	}
	existing, err := s.Get(ctx, record.Key)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		// Expired between SetNX and Get; treat the retry as fresh.
		return s.Save(ctx, record)
	}
	if existing.RequestHash != record.RequestHash {
		return existing, ports.ErrIdempotencyConflict
	}
	return existing, nil
}
