package service

import (
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(dish string) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the restaurant report of a dish as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(dish string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/api/dishes/%s/restaurants", g.BaseURL, url.PathEscape(dish))
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
