package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/qashop/storefront-api/internal/domains/orders/application/types"
	"github.com/qashop/storefront-api/internal/domains/orders/domain"
	"github.com/qashop/storefront-api/internal/domains/orders/ports"
)

// Service orchestrates the order intake pipeline and the read API.
type Service struct {
	repo    ports.Repository
	numbers ports.NumberGenerator
	idem    ports.IdempotencyStore
	now     func() time.Time
}

type Option func(*Service)

// WithIdempotencyStore enables replay-safe creation for keyed submissions.
func WithIdempotencyStore(store ports.IdempotencyStore) Option {
	return func(s *Service) { s.idem = store }
}

// WithClock overrides the time source for deterministic testing.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo ports.Repository, numbers ports.NumberGenerator, opts ...Option) *Service {
	s := &Service{repo: repo, numbers: numbers, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// CreateOrders runs the full intake pipeline: normalize every raw entry,
// validate the batch as a whole, number and timestamp each order, and commit
// them in a single repository transaction.
func (s *Service) CreateOrders(ctx context.Context, idempotencyKey string, raws []types.RawOrder) (*types.CreateResult, error) {
	orders := NormalizeBatch(raws)
	if err := ValidateBatch(orders); err != nil {
		return nil, err
	}

	idempotencyKey = strings.TrimSpace(idempotencyKey)
	var requestHash string
	if idempotencyKey != "" && s.idem != nil {
		hash, err := FingerprintBatch(orders)
		if err != nil {
			return nil, fmt.Errorf("fingerprint batch: %w", err)
		}
		requestHash = hash
		stored, err := s.idem.Get(ctx, idempotencyKey)
		if err != nil {
			return nil, err
		}
		if stored != nil {
			if stored.RequestHash != requestHash {
				return nil, ports.ErrIdempotencyConflict
			}
			return &types.CreateResult{OrderNumbers: stored.OrderNumbers, Replayed: true}, nil
		}
	}

	createdAt := s.now().UTC()
	numbers := make([]string, 0, len(orders))
	for _, order := range orders {
		order.Number = s.numbers.Next()
		order.CreatedAt = createdAt
		numbers = append(numbers, order.Number)
	}
	if err := s.repo.CreateBatch(ctx, orders); err != nil {
		return nil, err
	}

	if requestHash != "" {
		// Best effort: a failure to record the key must not undo a committed batch.
		_, _ = s.idem.Save(ctx, ports.IdempotencyRecord{
			Key:          idempotencyKey,
			RequestHash:  requestHash,
			OrderNumbers: numbers,
			CreatedAt:    createdAt,
		})
	}
	return &types.CreateResult{OrderNumbers: numbers}, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) FindByNumber(ctx context.Context, number string) (*domain.Order, error) {
	return s.repo.FindByNumber(ctx, strings.TrimSpace(number))
}

func (s *Service) FindByEmail(ctx context.Context, email string) ([]*domain.Order, error) {
	return s.repo.FindByEmail(ctx, strings.TrimSpace(email))
}

// CancelOrder transitions the order to Cancelled when its current state
// allows it.
func (s *Service) CancelOrder(ctx context.Context, number string) (*domain.Order, error) {
	order, err := s.repo.FindByNumber(ctx, strings.TrimSpace(number))
	if err != nil {
		return nil, err
	}
	if err := order.Transition(domain.StatusCancelled); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, order.Number, order.Status); err != nil {
		return nil, err
	}
	return order, nil
}

// BackfillStatuses assigns the default active status to orders that have none.
// Explicit statuses, including cancellations, survive restarts untouched.
func (s *Service) BackfillStatuses(ctx context.Context) (int64, error) {
	return s.repo.BackfillStatuses(ctx, domain.StatusPlaced)
}

// SeedSampleOrders inserts the fixed demo ledger when the store is empty. It
// runs before the service accepts traffic.
func (s *Service) SeedSampleOrders(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	orders := sampleOrders()
	createdAt := s.now().UTC()
	for _, order := range orders {
		order.Number = s.numbers.Next()
		order.CreatedAt = createdAt
	}
	if err := s.repo.CreateBatch(ctx, orders); err != nil {
		return fmt.Errorf("seed sample orders: %w", err)
	}
	return nil
}

var _ ports.Service = (*Service)(nil)

// IsNotFound reports whether the error is the repository's absence sentinel.
func IsNotFound(err error) bool { return errors.Is(err, ports.ErrNotFound) }
