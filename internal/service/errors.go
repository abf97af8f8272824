package service

import "errors"

var (
	// ErrNotFound is returned when an operation references an unknown
	// menu item id, so HTTP handlers can respond with 404.
	ErrNotFound = errors.New("menu item not found")

	// ErrEmptyCart rejects checkout and payment-QR display on a cart
	// with zero lines.
	ErrEmptyCart = errors.New("cart is empty")
)

// ValidationError communicates bad user input back to the handlers.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}
