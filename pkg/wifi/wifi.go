// Package wifi formats Wi-Fi credential payloads and encodes them as
// scannable QR codes.
package wifi

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/mtik00/wifi-business-cards/pkg/cards"
)

// payloadFormat is the standard Wi-Fi network config QR payload
// understood by phone cameras: WIFI:T:<encryption>;S:<ssid>;P:<password>;;
const payloadFormat = "WIFI:T:%s;S:%s;P:%s;;"

// qrPixels is the raster edge length handed to the encoder. The PDF
// scales the image to the layout's QRSize, so this just needs enough
// resolution to print crisply at ~1 inch.
const qrPixels = 256

// Payload formats n's credentials as a Wi-Fi config QR payload string.
// The encryption tag falls back to WPA when the record omits one.
func Payload(n *cards.Network) string {
	return fmt.Sprintf(payloadFormat, n.EncryptionOrDefault(), n.SSID, n.Password)
}

// QRCode encodes n's credentials as a QR code image suitable for
// embedding in the card. Medium error recovery matches what phone
// scanners expect from printed codes.
func QRCode(n *cards.Network) (image.Image, error) {
	data, err := qrcode.Encode(Payload(n), qrcode.Medium, qrPixels)
	if err != nil {
		return nil, fmt.Errorf("encode QR for %q: %w", n.SSID, err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode QR for %q: %w", n.SSID, err)
	}
	return img, nil
}
