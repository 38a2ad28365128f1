package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRGenerator renders a scannable deep link to a restaurant's public menu.
type QRGenerator interface {
	Generate(restaurantID string) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(restaurantID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/generate/%s", g.BaseURL, restaurantID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
