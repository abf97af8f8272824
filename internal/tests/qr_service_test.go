package tests

import (
	"context"
	"errors"
	"strings"
	"testing"

	"eatery-pos/internal/service"
	"eatery-pos/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQRService(t *testing.T, store *storage.MemoryStore) *service.QRService {
	t.Helper()
	qr, err := service.NewQRService(context.Background(), storage.NewRepository(store))
	require.NoError(t, err)
	return qr
}

func TestQRService_SetImage(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	qr := newQRService(t, store)

	dataURI, err := qr.SetImage(ctx, []byte{0x89, 'P', 'N', 'G'}, "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURI, "data:image/png;base64,"))
	assert.Equal(t, dataURI, qr.Image())

	// A fresh service over the same store sees the saved image.
	reloaded := newQRService(t, store)
	assert.Equal(t, dataURI, reloaded.Image())
}

func TestQRService_RejectsNonImageUpload(t *testing.T) {
	qr := newQRService(t, storage.NewMemoryStore())

	_, err := qr.SetImage(context.Background(), []byte("%PDF-1.4"), "application/pdf")

	var validation *service.ValidationError
	assert.True(t, errors.As(err, &validation))
	assert.Empty(t, qr.Image())
}

func TestQRService_ForAmount(t *testing.T) {
	ctx := context.Background()
	qr := newQRService(t, storage.NewMemoryStore())

	// With nothing uploaded a code is generated for the amount.
	generated, err := qr.ForAmount(55)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(generated, "data:image/png;base64,"))

	// An uploaded image takes precedence.
	uploaded, err := qr.SetImage(ctx, []byte{1, 2, 3}, "image/jpeg")
	require.NoError(t, err)
	got, err := qr.ForAmount(55)
	require.NoError(t, err)
	assert.Equal(t, uploaded, got)
}
