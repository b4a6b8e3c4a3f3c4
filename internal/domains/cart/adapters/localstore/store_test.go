package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qashop/storefront-api/internal/domains/cart/domain"
)

func sampleCart() *domain.Cart {
	return &domain.Cart{Items: []domain.Item{
		{ProductID: "prod-4", Name: "Nimbus Mouse", SKU: "DL-10", Price: 54.99, Quantity: 2},
		{ProductID: "prod-2", Name: "4K Monitor", SKU: "4K-27", Price: 399.99, Quantity: 1},
	}}
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	store := New(t.TempDir(), nil)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleCart()))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, sampleCart(), loaded)
}

func TestLoad_AbsentStateIsEmptyCart(t *testing.T) {
	store := New(t.TempDir(), nil)

	cart, err := store.Load(context.Background())
	require.NoError(t, err)
	require.True(t, cart.IsEmpty())
}

func TestLoad_CorruptStateIsEmptyCart(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "qa-cart-items.json"), []byte(`{broken`), 0o644))
	store := New(dir, nil)

	cart, err := store.Load(context.Background())
	require.NoError(t, err)
	require.True(t, cart.IsEmpty())
}

func TestBadgeQuantity_TracksSaves(t *testing.T) {
	store := New(t.TempDir(), nil)
	ctx := context.Background()

	require.Equal(t, 0, store.BadgeQuantity(ctx))
	require.NoError(t, store.Save(ctx, sampleCart()))
	require.Equal(t, 3, store.BadgeQuantity(ctx))
	require.NoError(t, store.Clear(ctx))
	require.Equal(t, 0, store.BadgeQuantity(ctx))
}

func TestBadgeQuantity_MangledValueReadsZero(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, nil)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "qa-cart-qty"), []byte("many"), 0o644))

	require.Equal(t, 0, store.BadgeQuantity(context.Background()))
}

func TestClear_PersistsEmptyState(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, nil)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, sampleCart()))

	require.NoError(t, store.Clear(ctx))

	reopened := New(dir, nil)
	cart, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.True(t, cart.IsEmpty())
}

func TestUnusableDirFallsBackToMemory(t *testing.T) {
	parent := t.TempDir()
	blocked := filepath.Join(parent, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("file, not a dir"), 0o644))

	store := New(filepath.Join(blocked, "cart"), nil)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleCart()))
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, loaded.TotalQuantity())
}
