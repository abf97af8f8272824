package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/skip2/go-qrcode"
)

// QRService holds the payment QR image shown at checkout. The owner
// uploads one; when none exists a code for the payable amount is
// generated instead.
type QRService struct {
	mu      sync.Mutex
	repo    StateRepository
	dataURI string
}

func NewQRService(ctx context.Context, repo StateRepository) (*QRService, error) {
	dataURI, err := repo.LoadQRImage(ctx)
	if err != nil {
		return nil, err
	}
	return &QRService{repo: repo, dataURI: dataURI}, nil
}

// SetImage stores an uploaded image as a data URI. Non-image MIME
// types are rejected.
func (s *QRService) SetImage(ctx context.Context, content []byte, contentType string) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", &ValidationError{Field: "qr image", Reason: "must be an image file"}
	}
	if len(content) == 0 {
		return "", &ValidationError{Field: "qr image", Reason: "must not be empty"}
	}

	dataURI := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(content)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataURI = dataURI
	if err := s.repo.SaveQRImage(ctx, dataURI); err != nil {
		log.Printf("[pos] qr image not persisted, continuing in memory: %v", err)
	}
	return dataURI, nil
}

// Image returns the stored data URI, empty when nothing is uploaded.
func (s *QRService) Image() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataURI
}

// ForAmount returns the uploaded payment QR when present, otherwise
// a generated code carrying the payable amount.
func (s *QRService) ForAmount(total float64) (string, error) {
	if image := s.Image(); image != "" {
		return image, nil
	}

	png, err := qrcode.Encode(fmt.Sprintf("upi://pay?am=%.2f", total), qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

var _ QRServiceInterface = (*QRService)(nil)
