package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"eatery-pos/internal/domain"
)

// Repository is the typed layer over the blob store: JSON codec plus
// schema validation on load. Absent blobs come back as zero values
// so the services can seed defaults.
type Repository struct {
	store BlobStore
}

func NewRepository(store BlobStore) *Repository {
	return &Repository{store: store}
}

func (r *Repository) LoadMenu(ctx context.Context) ([]domain.MenuItem, error) {
	raw, found, err := r.store.Load(ctx, KeyMenu)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	if !found {
		return nil, nil
	}

	var items []domain.MenuItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: menu: %v", ErrCorruptData, err)
	}
	for _, item := range items {
		if item.ID <= 0 {
			return nil, fmt.Errorf("%w: menu item with non-positive id %d", ErrCorruptData, item.ID)
		}
		if strings.TrimSpace(item.Name) == "" {
			return nil, fmt.Errorf("%w: menu item %d has empty name", ErrCorruptData, item.ID)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("%w: menu item %d has negative price", ErrCorruptData, item.ID)
		}
	}
	return items, nil
}

func (r *Repository) SaveMenu(ctx context.Context, items []domain.MenuItem) error {
	return r.save(ctx, KeyMenu, items)
}

func (r *Repository) LoadCart(ctx context.Context) ([]domain.CartLine, error) {
	raw, found, err := r.store.Load(ctx, KeyCart)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if !found {
		return nil, nil
	}

	var lines []domain.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fmt.Errorf("%w: cart: %v", ErrCorruptData, err)
	}
	for _, line := range lines {
		if line.ID <= 0 || line.Quantity < 1 || line.Price < 0 {
			return nil, fmt.Errorf("%w: cart line for item %d", ErrCorruptData, line.ID)
		}
	}
	return lines, nil
}

func (r *Repository) SaveCart(ctx context.Context, lines []domain.CartLine) error {
	return r.save(ctx, KeyCart, lines)
}

func (r *Repository) LoadOrders(ctx context.Context) ([]domain.Order, error) {
	raw, found, err := r.store.Load(ctx, KeyOrders)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	if !found {
		return nil, nil
	}

	var orders []domain.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		return nil, fmt.Errorf("%w: orders: %v", ErrCorruptData, err)
	}
	for i, order := range orders {
		if order.Date.IsZero() || order.Total < 0 {
			return nil, fmt.Errorf("%w: order %d", ErrCorruptData, i)
		}
	}
	return orders, nil
}

func (r *Repository) SaveOrders(ctx context.Context, orders []domain.Order) error {
	return r.save(ctx, KeyOrders, orders)
}

func (r *Repository) LoadQRImage(ctx context.Context) (string, error) {
	raw, found, err := r.store.Load(ctx, KeyQRCode)
	if err != nil {
		return "", fmt.Errorf("load qr image: %w", err)
	}
	if !found {
		return "", nil
	}
	return raw, nil
}

func (r *Repository) SaveQRImage(ctx context.Context, dataURI string) error {
	// The slot is only ever written once an image exists.
	if dataURI == "" {
		return nil
	}
	return r.store.Save(ctx, KeyQRCode, dataURI)
}

func (r *Repository) save(ctx context.Context, key string, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := r.store.Save(ctx, key, string(payload)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
