package service

import (
	"context"

	"eatery-pos/internal/domain"
)

// StateRepository is the write-through persistence port. Saves carry
// the full sequence for their collection; load distinguishes absence
// (zero value, nil error) from corruption and driver failure.
type StateRepository interface {
	LoadMenu(ctx context.Context) ([]domain.MenuItem, error)
	SaveMenu(ctx context.Context, items []domain.MenuItem) error
	LoadCart(ctx context.Context) ([]domain.CartLine, error)
	SaveCart(ctx context.Context, lines []domain.CartLine) error
	LoadOrders(ctx context.Context) ([]domain.Order, error)
	SaveOrders(ctx context.Context, orders []domain.Order) error
	LoadQRImage(ctx context.Context) (string, error)
	SaveQRImage(ctx context.Context, dataURI string) error
}

// MenuReader is what the cart needs from the menu.
type MenuReader interface {
	Get(id int) (domain.MenuItem, error)
}

// CartCascader lets the menu drop cart lines when their item is
// deleted, without the menu owning the cart.
type CartCascader interface {
	RemoveItem(ctx context.Context, id int)
}

// OrderLister is the read-only view of the ledger the report needs.
type OrderLister interface {
	List() []domain.Order
}

// OrderPublisher announces completed orders downstream. Optional:
// services treat a nil publisher as "publish nowhere".
type OrderPublisher interface {
	PublishOrder(ctx context.Context, order domain.Order) error
}

type MenuServiceInterface interface {
	List() []domain.MenuItem
	Get(id int) (domain.MenuItem, error)
	Add(ctx context.Context, name string, price float64, image string) (domain.MenuItem, error)
	Update(ctx context.Context, id int, name string, price float64, image string) (domain.MenuItem, error)
	Delete(ctx context.Context, id int)
}

type CartServiceInterface interface {
	List() []domain.CartLine
	AddItem(ctx context.Context, menuItemID int) (domain.CartLine, error)
	RemoveItem(ctx context.Context, id int)
	ChangeQuantity(ctx context.Context, id, delta int)
	Clear(ctx context.Context)
	Total() float64
}

type OrderServiceInterface interface {
	List() []domain.Order
	Checkout(ctx context.Context, lines []domain.CartLine) (domain.Order, error)
}

type ReportServiceInterface interface {
	FilterByMonth(orders []domain.Order, monthKey string) ([]domain.Order, string)
	BucketByDay(orders []domain.Order) []domain.SalesBucket
	MonthlyTotal(orders []domain.Order) float64
	Monthly(monthKey string) domain.MonthlyReport
}

type QRServiceInterface interface {
	SetImage(ctx context.Context, content []byte, contentType string) (string, error)
	Image() string
	ForAmount(total float64) (string, error)
}
