package service

import (
	"context"
	"log"
	"sync"
	"time"

	"eatery-pos/internal/domain"
)

// OrderService owns the append-only ledger of completed transactions.
// Orders are never updated or deleted.
type OrderService struct {
	mu        sync.Mutex
	repo      StateRepository
	publisher OrderPublisher
	orders    []domain.Order
	now       func() time.Time
}

func NewOrderService(ctx context.Context, repo StateRepository, publisher OrderPublisher) (*OrderService, error) {
	orders, err := repo.LoadOrders(ctx)
	if err != nil {
		return nil, err
	}
	return &OrderService{
		repo:      repo,
		publisher: publisher,
		orders:    orders,
		now:       time.Now,
	}, nil
}

// List returns the ledger oldest-first, matching creation order.
func (s *OrderService) List() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Checkout snapshots the cart lines into a new Order and appends it.
// The cart itself is untouched; the caller clears it afterwards.
func (s *OrderService) Checkout(ctx context.Context, lines []domain.CartLine) (domain.Order, error) {
	if len(lines) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.OrderItem{
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}
	order := domain.Order{
		Date:  s.now().UTC(),
		Items: items,
		Total: domain.CartTotal(lines),
	}

	s.mu.Lock()
	s.orders = append(s.orders, order)
	if err := s.repo.SaveOrders(ctx, s.orders); err != nil {
		log.Printf("[pos] orders not persisted, continuing in memory: %v", err)
	}
	s.mu.Unlock()

	if s.publisher != nil {
		if err := s.publisher.PublishOrder(ctx, order); err != nil {
			log.Printf("[pos] order event not published: %v", err)
		}
	}
	return order, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
