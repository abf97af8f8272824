package storage

import (
	"context"
	"errors"
)

// Blob keys, one per top-level collection.
const (
	KeyMenu   = "restaurant:menu"
	KeyCart   = "restaurant:cart"
	KeyOrders = "restaurant:orders"
	KeyQRCode = "restaurant:qrcode"
)

// ErrCorruptData marks a blob that was present but failed schema
// validation, as opposed to a driver failure.
var ErrCorruptData = errors.New("corrupt persisted data")

// BlobStore is the key/value persistence port. Load reports absence
// through found=false rather than an error.
type BlobStore interface {
	Load(ctx context.Context, key string) (value string, found bool, err error)
	Save(ctx context.Context, key, value string) error
}
