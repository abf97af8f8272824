package storage

import (
	"context"
	"testing"

	"eatery-pos/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_AbsentBlobsAreZeroValues(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(NewMemoryStore())

	menu, err := repo.LoadMenu(ctx)
	require.NoError(t, err)
	assert.Nil(t, menu)

	cart, err := repo.LoadCart(ctx)
	require.NoError(t, err)
	assert.Nil(t, cart)

	orders, err := repo.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Nil(t, orders)

	image, err := repo.LoadQRImage(ctx)
	require.NoError(t, err)
	assert.Empty(t, image)
}

func TestRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(NewMemoryStore())

	items := []domain.MenuItem{{ID: 1, Name: "Idly", Price: 20}}
	require.NoError(t, repo.SaveMenu(ctx, items))
	got, err := repo.LoadMenu(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, got)

	lines := []domain.CartLine{{ID: 1, Name: "Idly", Price: 20, Quantity: 2}}
	require.NoError(t, repo.SaveCart(ctx, lines))
	gotLines, err := repo.LoadCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, lines, gotLines)
}

func TestRepository_CorruptBlobs(t *testing.T) {
	tests := []struct {
		name string
		key  string
		raw  string
	}{
		{name: "menu bad json", key: KeyMenu, raw: `{"not":"an array"}`},
		{name: "menu non-positive id", key: KeyMenu, raw: `[{"id":0,"name":"Idly","price":20}]`},
		{name: "menu empty name", key: KeyMenu, raw: `[{"id":1,"name":"  ","price":20}]`},
		{name: "menu negative price", key: KeyMenu, raw: `[{"id":1,"name":"Idly","price":-1}]`},
		{name: "cart bad json", key: KeyCart, raw: `garbage`},
		{name: "cart zero quantity", key: KeyCart, raw: `[{"id":1,"name":"Idly","price":20,"quantity":0}]`},
		{name: "orders bad json", key: KeyOrders, raw: `garbage`},
		{name: "orders negative total", key: KeyOrders, raw: `[{"date":"2024-01-02T10:00:00Z","items":[],"total":-1}]`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ctx := context.Background()
			store := NewMemoryStore()
			require.NoError(t, store.Save(ctx, testCase.key, testCase.raw))
			repo := NewRepository(store)

			var err error
			switch testCase.key {
			case KeyMenu:
				_, err = repo.LoadMenu(ctx)
			case KeyCart:
				_, err = repo.LoadCart(ctx)
			case KeyOrders:
				_, err = repo.LoadOrders(ctx)
			}
			assert.ErrorIs(t, err, ErrCorruptData)
		})
	}
}

func TestRepository_QRImageSkipsEmptySave(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewRepository(store)

	require.NoError(t, repo.SaveQRImage(ctx, ""))
	_, found, err := store.Load(ctx, KeyQRCode)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SaveQRImage(ctx, "data:image/png;base64,abc"))
	got, err := repo.LoadQRImage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,abc", got)
}
