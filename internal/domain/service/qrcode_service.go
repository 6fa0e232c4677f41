package service

// QRCodeService renders share links as QR code images.
type QRCodeService interface {
	// GenerateShareQR returns a PNG QR code encoding the recipe share URL.
	GenerateShareQR(recipeID int64) ([]byte, error)
}
