package service

import (
	"context"
	"log"
	"sync"

	"eatery-pos/internal/domain"
)

// CartService owns the transient pre-checkout selection. At most one
// line exists per menu item id; name and price are snapshotted from
// the menu at first add.
type CartService struct {
	mu    sync.Mutex
	repo  StateRepository
	menu  MenuReader
	lines []domain.CartLine
}

func NewCartService(ctx context.Context, repo StateRepository, menu MenuReader) (*CartService, error) {
	lines, err := repo.LoadCart(ctx)
	if err != nil {
		return nil, err
	}
	return &CartService{repo: repo, menu: menu, lines: lines}, nil
}

func (s *CartService) List() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *CartService) AddItem(ctx context.Context, menuItemID int) (domain.CartLine, error) {
	item, err := s.menu.Get(menuItemID)
	if err != nil {
		return domain.CartLine{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == menuItemID {
			s.lines[i].Quantity++
			s.persist(ctx)
			return s.lines[i], nil
		}
	}

	line := domain.CartLine{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
	}
	s.lines = append(s.lines, line)
	s.persist(ctx)
	return line, nil
}

func (s *CartService) RemoveItem(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(ctx, id)
}

// ChangeQuantity adds delta to the line's quantity; a result of zero
// or below removes the line. Unknown ids are a silent no-op.
func (s *CartService) ChangeQuantity(ctx context.Context, id, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID != id {
			continue
		}
		s.lines[i].Quantity += delta
		if s.lines[i].Quantity <= 0 {
			s.removeLocked(ctx, id)
			return
		}
		s.persist(ctx)
		return
	}
}

func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.persist(ctx)
}

func (s *CartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CartTotal(s.lines)
}

func (s *CartService) removeLocked(ctx context.Context, id int) {
	kept := s.lines[:0]
	removed := false
	for _, line := range s.lines {
		if line.ID == id {
			removed = true
			continue
		}
		kept = append(kept, line)
	}
	s.lines = kept
	if removed {
		s.persist(ctx)
	}
}

func (s *CartService) persist(ctx context.Context) {
	if err := s.repo.SaveCart(ctx, s.lines); err != nil {
		log.Printf("[pos] cart not persisted, continuing in memory: %v", err)
	}
}

var _ CartServiceInterface = (*CartService)(nil)
var _ CartCascader = (*CartService)(nil)
