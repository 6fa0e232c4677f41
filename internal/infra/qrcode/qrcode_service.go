// Package qrcode renders recipe share links as QR code images.
package qrcode

import (
	"fmt"
	"strings"

	"recipehub/config"
	"recipehub/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:8080"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	baseURL := defaultBaseURL
	size := defaultSize
	level := qrcode.Medium

	if cfg != nil && cfg.Share != nil {
		if cfg.Share.BaseURL != "" {
			baseURL = cfg.Share.BaseURL
		}
		if cfg.Share.QRSize > 0 {
			size = cfg.Share.QRSize
		}
		switch cfg.Share.ErrorCorrectionLevel {
		case "L":
			level = qrcode.Low
		case "M":
			level = qrcode.Medium
		case "Q":
			level = qrcode.High
		case "H":
			level = qrcode.Highest
		}
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateShareQR returns a PNG QR code encoding the recipe share URL.
func (s *qrcodeService) GenerateShareQR(recipeID int64) ([]byte, error) {
	shareURL := fmt.Sprintf("%s/recipes/%d", s.baseURL, recipeID)

	qrCode, err := qrcode.New(shareURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
