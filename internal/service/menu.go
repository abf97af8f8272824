package service

import (
	"context"
	"log"
	"math"
	"strings"
	"sync"

	"eatery-pos/internal/domain"
)

// MenuService owns the menu catalog in memory and writes the full
// sequence through on every successful mutation. A failed write is
// logged and the in-memory change stands; the session continues in
// memory-only mode.
type MenuService struct {
	mu    sync.Mutex
	repo  StateRepository
	carts CartCascader
	items []domain.MenuItem
}

func NewMenuService(ctx context.Context, repo StateRepository) (*MenuService, error) {
	items, err := repo.LoadMenu(ctx)
	if err != nil {
		return nil, err
	}
	svc := &MenuService{repo: repo, items: items}
	if len(items) == 0 {
		svc.items = domain.DefaultMenu()
		if err := repo.SaveMenu(ctx, svc.items); err != nil {
			log.Printf("[pos] seeding default menu: %v", err)
		}
	}
	return svc, nil
}

// SetCartCascader wires the cart after both services exist.
func (s *MenuService) SetCartCascader(carts CartCascader) {
	s.carts = carts
}

func (s *MenuService) List() []domain.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *MenuService) Get(id int) (domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.MenuItem{}, ErrNotFound
}

func (s *MenuService) Add(ctx context.Context, name string, price float64, image string) (domain.MenuItem, error) {
	name = strings.TrimSpace(name)
	if err := validateItem(name, price); err != nil {
		return domain.MenuItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, item := range s.items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	item := domain.MenuItem{
		ID:    maxID + 1,
		Name:  name,
		Price: domain.Round2(price),
		Image: strings.TrimSpace(image),
	}
	s.items = append(s.items, item)
	s.persist(ctx)
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, id int, name string, price float64, image string) (domain.MenuItem, error) {
	name = strings.TrimSpace(name)
	if err := validateItem(name, price); err != nil {
		return domain.MenuItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		s.items[i].Name = name
		s.items[i].Price = domain.Round2(price)
		s.items[i].Image = strings.TrimSpace(image)
		s.persist(ctx)
		return s.items[i], nil
	}
	return domain.MenuItem{}, ErrNotFound
}

// Delete is idempotent; removing an unknown id is a no-op. Cart
// lines referencing the item are removed as well.
func (s *MenuService) Delete(ctx context.Context, id int) {
	s.mu.Lock()
	kept := s.items[:0]
	removed := false
	for _, item := range s.items {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	if removed {
		s.persist(ctx)
	}
	s.mu.Unlock()

	if removed && s.carts != nil {
		s.carts.RemoveItem(ctx, id)
	}
}

func (s *MenuService) persist(ctx context.Context) {
	if err := s.repo.SaveMenu(ctx, s.items); err != nil {
		log.Printf("[pos] menu not persisted, continuing in memory: %v", err)
	}
}

func validateItem(name string, price float64) error {
	if name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return &ValidationError{Field: "price", Reason: "must be a number"}
	}
	if price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return nil
}

var _ MenuServiceInterface = (*MenuService)(nil)
var _ MenuReader = (*MenuService)(nil)
