package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderNumber string) ([]byte, error)
}

// PickupQRGenerator encodes the pickup check-in link shown to the shop
// operator when the customer arrives.
type PickupQRGenerator struct {
	BaseURL string
}

func (g PickupQRGenerator) Generate(orderNumber string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/pickup?order=%s", g.BaseURL, orderNumber)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
