package service

// QRCodeService generates share codes for artwork detail pages.
type QRCodeService interface {
	// ShareQR renders a PNG QR code pointing at the public details page of
	// the given listing.
	ShareQR(artID string) ([]byte, error)
}
