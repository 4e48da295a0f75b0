// Package qrcode renders share codes for artwork detail pages.
package qrcode

import (
	"strings"

	"artify/config"
	"artify/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := 256
	level := qrcode.Medium
	baseURL := "http://localhost:8080"

	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.BaseURL != "" {
			baseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
		}
		switch cfg.QRCode.ErrorCorrectionLevel {
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
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// ShareQR renders a PNG QR code pointing at the listing's public details
// page.
func (s *qrcodeService) ShareQR(artID string) ([]byte, error) {
	if artID == "" {
		return nil, errors.New("artID must not be empty")
	}

	code, err := qrcode.New(s.baseURL+"/art/"+artID, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
