package render

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/mtik00/wifi-business-cards/pkg/cards"
	"github.com/mtik00/wifi-business-cards/pkg/layout"
	"github.com/mtik00/wifi-business-cards/pkg/wifi"
)

// Sheet renders resolved placements onto one page and writes the finished
// PDF to w. Placements come from cards.Resolve, so every cell is within
// the layout grid and nothing is written until all cards drew cleanly.
func Sheet(w io.Writer, l layout.Layout, placements []cards.Placement, box bool) error {
	if err := l.Validate(); err != nil {
		return err
	}

	canvas, err := NewPDF(l)
	if err != nil {
		return err
	}

	// One QR per distinct network; cells sharing a record share the image.
	codes := make(map[*cards.Network]image.Image)
	for _, p := range placements {
		qr, ok := codes[p.Network]
		if !ok {
			if qr, err = wifi.QRCode(p.Network); err != nil {
				return err
			}
			codes[p.Network] = qr
		}
		if err := DrawCard(canvas, l, p, qr, box); err != nil {
			return fmt.Errorf("card %s: %w", p.Pos, err)
		}
	}

	_, err = canvas.WriteTo(w)
	return err
}

// SheetFile renders the sheet and writes it to path. The document is
// assembled in memory first so a failed run leaves no partial file behind.
func SheetFile(path string, l layout.Layout, placements []cards.Placement, box bool) error {
	var buf bytes.Buffer
	if err := Sheet(&buf, l, placements, box); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
