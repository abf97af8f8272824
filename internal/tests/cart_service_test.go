package tests

import (
	"context"
	"testing"

	"eatery-pos/internal/service"
	"eatery-pos/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(t *testing.T) (*service.MenuService, *service.CartService) {
	t.Helper()
	ctx := context.Background()
	repo := storage.NewRepository(storage.NewMemoryStore())

	menu, err := service.NewMenuService(ctx, repo)
	require.NoError(t, err)
	cart, err := service.NewCartService(ctx, repo, menu)
	require.NoError(t, err)
	menu.SetCartCascader(cart)
	return menu, cart
}

func TestCartService_RepeatedAddAccumulatesOneLine(t *testing.T) {
	ctx := context.Background()
	_, cart := newCartFixture(t)

	for i := 0; i < 3; i++ {
		_, err := cart.AddItem(ctx, 1)
		require.NoError(t, err)
	}

	lines := cart.List()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestCartService_AddUnknownItem(t *testing.T) {
	_, cart := newCartFixture(t)

	_, err := cart.AddItem(context.Background(), 999)
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Empty(t, cart.List())
}

func TestCartService_SnapshotSurvivesMenuEdit(t *testing.T) {
	ctx := context.Background()
	menu, cart := newCartFixture(t)

	line, err := cart.AddItem(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 20.0, line.Price)

	_, err = menu.Update(ctx, 1, "Idly", 35, "")
	require.NoError(t, err)

	// The line keeps the price it was added at.
	lines := cart.List()
	require.Len(t, lines, 1)
	assert.Equal(t, 20.0, lines[0].Price)

	// A fresh add increments the existing line, still at the old price.
	_, err = cart.AddItem(ctx, 1)
	require.NoError(t, err)
	lines = cart.List()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 20.0, lines[0].Price)
}

func TestCartService_ChangeQuantity(t *testing.T) {
	ctx := context.Background()
	_, cart := newCartFixture(t)

	_, err := cart.AddItem(ctx, 1)
	require.NoError(t, err)
	cart.ChangeQuantity(ctx, 1, 2)
	assert.Equal(t, 3, cart.List()[0].Quantity)

	// Dropping to zero or below removes the line entirely.
	cart.ChangeQuantity(ctx, 1, -3)
	assert.Empty(t, cart.List())

	// Unknown id is a silent no-op.
	cart.ChangeQuantity(ctx, 999, 1)
	assert.Empty(t, cart.List())
}

func TestCartService_Total(t *testing.T) {
	ctx := context.Background()
	menu, cart := newCartFixture(t)

	a, err := menu.Add(ctx, "Thali", 20, "")
	require.NoError(t, err)
	b, err := menu.Add(ctx, "Lassi", 15, "")
	require.NoError(t, err)

	_, err = cart.AddItem(ctx, a.ID)
	require.NoError(t, err)
	_, err = cart.AddItem(ctx, a.ID)
	require.NoError(t, err)
	_, err = cart.AddItem(ctx, b.ID)
	require.NoError(t, err)

	assert.Equal(t, 55.0, cart.Total())
}

func TestCartService_TotalAvoidsFloatDrift(t *testing.T) {
	ctx := context.Background()
	menu, cart := newCartFixture(t)

	item, err := menu.Add(ctx, "Biscuit", 0.10, "")
	require.NoError(t, err)
	_, err = cart.AddItem(ctx, item.ID)
	require.NoError(t, err)
	cart.ChangeQuantity(ctx, item.ID, 2)

	// 3 * 0.10 must come out exactly, not 0.30000000000000004.
	assert.Equal(t, 0.3, cart.Total())
}

func TestCartService_Clear(t *testing.T) {
	ctx := context.Background()
	_, cart := newCartFixture(t)

	_, err := cart.AddItem(ctx, 1)
	require.NoError(t, err)
	cart.Clear(ctx)
	assert.Empty(t, cart.List())
	assert.Equal(t, 0.0, cart.Total())
}

func TestCartService_ReloadsPersistedLines(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewRepository(storage.NewMemoryStore())

	menu, err := service.NewMenuService(ctx, repo)
	require.NoError(t, err)
	cart, err := service.NewCartService(ctx, repo, menu)
	require.NoError(t, err)
	_, err = cart.AddItem(ctx, 1)
	require.NoError(t, err)

	// A second service over the same store sees the saved cart.
	reloaded, err := service.NewCartService(ctx, repo, menu)
	require.NoError(t, err)
	require.Len(t, reloaded.List(), 1)
	assert.Equal(t, 1, reloaded.List()[0].ID)
}
