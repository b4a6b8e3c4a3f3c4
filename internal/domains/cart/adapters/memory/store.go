package memory

import (
	"context"
	"sync"

	"github.com/qashop/storefront-api/internal/domains/cart/domain"
	"github.com/qashop/storefront-api/internal/domains/cart/ports"
)

var _ ports.SessionStore = (*SessionStore)(nil)

// SessionStore keeps the cart for the current process only; state is lost on
// exit. It is the degraded mode the durable store falls back to.
type SessionStore struct {
	mu   sync.RWMutex
	cart domain.Cart
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Load(_ context.Context) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := domain.Cart{Items: append([]domain.Item(nil), s.cart.Items...)}
	return &clone, nil
}

func (s *SessionStore) Save(_ context.Context, cart *domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = domain.Cart{Items: append([]domain.Item(nil), cart.Items...)}
	return nil
}

func (s *SessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = domain.Cart{}
	return nil
}
