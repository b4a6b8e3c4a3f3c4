package ports

import (
	"context"
	"errors"
	"time"
)

// ErrIdempotencyConflict indicates the same key was reused with a different payload.
var ErrIdempotencyConflict = errors.New("idempotency conflict")

// IdempotencyRecord associates a client-supplied key with the order numbers a
// submission produced.
type IdempotencyRecord struct {
	Key          string
	RequestHash  string
	OrderNumbers []string
	CreatedAt    time.Time
}

// IdempotencyStore persists idempotency keys so checkout retries can be
// replayed safely.
type IdempotencyStore interface {
	// Get returns the stored record for the key, or nil when unknown.
	Get(ctx context.Context, key string) (*IdempotencyRecord, error)
	// Save persists the record; if the key already exists with the same hash
	// the stored record is returned. When the key exists with a different
	// hash, ErrIdempotencyConflict is returned with the stored record.
	Save(ctx context.Context, record IdempotencyRecord) (*IdempotencyRecord, error)
}
