package render

import (
	"fmt"
	"image"

	"github.com/mtik00/wifi-business-cards/pkg/cards"
	"github.com/mtik00/wifi-business-cards/pkg/layout"
)

// DrawCard draws one card at the grid cell given by p.Pos.
//
// Drawn in order: the boundary rectangle with a cell-address label when
// box is set (useful while lining the grid up against perforated stock),
// the QR code, the network name in bold, the SSID and the password. The
// password is the only line allowed to shrink: its size steps down until
// it fits the card interior so long secrets never cross the boundary.
func DrawCard(c Canvas, l layout.Layout, p cards.Placement, qr image.Image, box bool) error {
	left, top := l.CardOrigin(p.Pos)
	n := p.Network

	if box {
		c.Rect(left, top, l.CardWidth, l.CardHeight)
		if err := c.SetFont(FontNormal, l.FontSize); err != nil {
			return err
		}
		label := fmt.Sprintf("R%d C%d", p.Pos.Row, p.Pos.Col)
		if err := c.Text(left+0.2*layout.Inch, top+l.CardHeight-0.2*layout.Inch-l.FontSize, label); err != nil {
			return err
		}
	}

	if err := c.Image(qr, left+l.XOffset, top+l.YOffset, l.QRSize, l.QRSize); err != nil {
		return fmt.Errorf("draw QR for %q: %w", n.SSID, err)
	}

	// Title and SSID sit to the right of the QR code.
	x := left + 1.0*layout.Inch
	y := top + 2*l.YOffset
	if err := drawText(c, FontBold, l.FontSize, x, y, n.Name); err != nil {
		return err
	}
	y += 0.3 * layout.Inch
	if err := drawText(c, FontNormal, l.FontSize, x, y, "SSID:"); err != nil {
		return err
	}
	y += 0.2 * layout.Inch
	if err := drawText(c, FontMono, l.FontSize, x, y, n.SSID); err != nil {
		return err
	}

	// Password gets the full card width below the QR code.
	x = left + l.XOffset
	y += 0.5 * layout.Inch
	if err := drawText(c, FontNormal, l.FontSize, x, y, "Password:"); err != nil {
		return err
	}
	y += 0.3 * layout.Inch

	size, err := FitSize(n.Password, l.InteriorWidth(), l.FontSize, MinFontSize, func(s string, size float64) (float64, error) {
		if err := c.SetFont(FontMono, size); err != nil {
			return 0, err
		}
		return c.TextWidth(s)
	})
	if err != nil {
		return fmt.Errorf("fit password for %q: %w", n.SSID, err)
	}
	return drawText(c, FontMono, size, x, y, n.Password)
}

// drawText selects a face and draws one line at (x, y).
func drawText(c Canvas, family string, size, x, y float64, s string) error {
	if err := c.SetFont(family, size); err != nil {
		return err
	}
	return c.Text(x, y, s)
}
