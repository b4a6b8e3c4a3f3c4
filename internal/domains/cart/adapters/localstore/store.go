// Package localstore persists the cart as origin-scoped files, mirroring the
// browser's localStorage keys. When the directory is unusable the store
// silently degrades to in-memory state for the current session.
package localstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/qashop/storefront-api/internal/domains/cart/adapters/memory"
	"github.com/qashop/storefront-api/internal/domains/cart/domain"
	"github.com/qashop/storefront-api/internal/domains/cart/ports"
)

const (
	itemsKey = "qa-cart-items"
	qtyKey   = "qa-cart-qty"
)

var _ ports.SessionStore = (*SessionStore)(nil)

// SessionStore writes the cart entries and the derived badge quantity on
// every mutation, so both survive a full restart.
type SessionStore struct {
	dir      string
	fallback ports.SessionStore
	logger   *slog.Logger
}

// New probes the directory for writability. On failure it returns a store
// backed by memory only; callers are not expected to care.
func New(dir string, logger *slog.Logger) *SessionStore {
	s := &SessionStore{dir: dir, logger: logger}
	if !s.usable() {
		if logger != nil {
			logger.Warn("cart storage unavailable, cart will not survive restarts", slog.String("dir", dir))
		}
		s.fallback = memory.NewSessionStore()
	}
	return s
}

func (s *SessionStore) usable() bool {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return false
	}
	probe := filepath.Join(s.dir, ".probe")
	if err := os.WriteFile(probe, []byte("1"), 0o644); err != nil {
		return false
	}
	_ = os.Remove(probe)
	return true
}

func (s *SessionStore) Load(ctx context.Context) (*domain.Cart, error) {
	if s.fallback != nil {
		return s.fallback.Load(ctx)
	}
	raw, err := os.ReadFile(filepath.Join(s.dir, itemsKey+".json"))
	if err != nil {
		// Absent or unreadable state reads as an empty cart.
		return &domain.Cart{}, nil
	}
	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		if s.logger != nil {
			s.logger.Warn("discarding corrupt cart state", slog.String("error", err.Error()))
		}
		return &domain.Cart{}, nil
	}
	return &cart, nil
}

func (s *SessionStore) Save(ctx context.Context, cart *domain.Cart) error {
	if s.fallback != nil {
		return s.fallback.Save(ctx, cart)
	}
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, itemsKey+".json"), raw, 0o644); err != nil {
		return err
	}
	qty := strconv.Itoa(cart.TotalQuantity())
	return os.WriteFile(filepath.Join(s.dir, qtyKey), []byte(qty), 0o644)
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if s.fallback != nil {
		return s.fallback.Clear(ctx)
	}
	return s.Save(ctx, &domain.Cart{})
}

// BadgeQuantity reads the persisted badge count without decoding the entries.
// A missing or mangled value degrades to zero.
func (s *SessionStore) BadgeQuantity(ctx context.Context) int {
	if s.fallback != nil {
		cart, err := s.fallback.Load(ctx)
		if err != nil {
			return 0
		}
		return cart.TotalQuantity()
	}
	raw, err := os.ReadFile(filepath.Join(s.dir, qtyKey))
	if err != nil {
		return 0
	}
	qty, err := strconv.Atoi(string(raw))
	if err != nil || qty < 0 {
		return 0
	}
	return qty
}
