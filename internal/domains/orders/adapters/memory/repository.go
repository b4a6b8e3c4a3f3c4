package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/qashop/storefront-api/internal/domains/orders/domain"
	"github.com/qashop/storefront-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order ledger for development and tests. It
// honors the same all-or-nothing batch contract as the Postgres adapter.
type Repository struct {
	mu     sync.RWMutex
	orders []*domain.Order
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) CreateBatch(_ context.Context, orders []*domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]struct{}{}
	for _, existing := range r.orders {
		seen[existing.Number] = struct{}{}
	}
	for _, order := range orders {
		if _, dup := seen[order.Number]; dup {
			return ports.ErrDuplicateNumber
		}
		seen[order.Number] = struct{}{}
	}
	for _, order := range orders {
		r.nextID++
		order.ID = r.nextID
		clone := cloneOrder(order)
		r.orders = append(r.orders, clone)
	}
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		list = append(list, cloneOrder(order))
	}
	sortNewestFirst(list)
	return list, nil
}

func (r *Repository) FindByNumber(_ context.Context, number string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, order := range r.orders {
		if order.Number == number {
			return cloneOrder(order), nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) FindByEmail(_ context.Context, email string) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*domain.Order
	for _, order := range r.orders {
		if strings.EqualFold(order.Email, email) {
			list = append(list, cloneOrder(order))
		}
	}
	sortNewestFirst(list)
	return list, nil
}

func (r *Repository) UpdateStatus(_ context.Context, number string, status domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range r.orders {
		if order.Number == number {
			order.Status = status
			return nil
		}
	}
	return ports.ErrNotFound
}

func (r *Repository) BackfillStatuses(_ context.Context, def domain.Status) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var updated int64
	for _, order := range r.orders {
		if order.Status == "" {
			order.Status = def
			updated++
		}
	}
	return updated, nil
}

func (r *Repository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.orders)), nil
}

func sortNewestFirst(list []*domain.Order) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID > list[j].ID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

func cloneOrder(order *domain.Order) *domain.Order {
	clone := *order
	clone.Items = append([]domain.LineItem(nil), order.Items...)
	if order.PaymentDetails != nil {
		clone.PaymentDetails = make(map[string]string, len(order.PaymentDetails))
		for k, v := range order.PaymentDetails {
			clone.PaymentDetails[k] = v
		}
	}
	return &clone
}
