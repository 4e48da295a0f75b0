package qrcode

import (
	"bytes"
	"testing"

	"artify/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestQRCodeService_ShareQR(t *testing.T) {
	cfg := &config.Config{}
	cfg.QRCode = &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M", BaseURL: "https://artify.example/"}
	svc := NewQRCodeService(cfg)

	png, err := svc.ShareQR("abc123")

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "expected a PNG image")
}

func TestQRCodeService_ShareQR_EmptyID(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	_, err := svc.ShareQR("")

	require.Error(t, err)
}
