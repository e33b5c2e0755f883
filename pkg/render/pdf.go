package render

import (
	"fmt"
	"image"
	"io"

	"github.com/signintech/gopdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/mtik00/wifi-business-cards/pkg/layout"
)

// documentTitle is the PDF metadata title.
const documentTitle = "WiFi Business Cards"

// PDF is a Canvas backed by a single-page gopdf document.
//
// The three card faces are embedded Go fonts, so no system font files are
// required at runtime.
type PDF struct {
	pdf *gopdf.GoPdf
}

var _ Canvas = (*PDF)(nil)

// NewPDF creates a one-page PDF canvas with the layout's page size and
// the card fonts registered.
func NewPDF(l layout.Layout) (*PDF, error) {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: gopdf.Rect{W: l.PageWidth, H: l.PageHeight}})
	pdf.SetInfo(gopdf.PdfInfo{Title: documentTitle, Producer: "wificards"})

	faces := []struct {
		family string
		data   []byte
	}{
		{FontNormal, goregular.TTF},
		{FontBold, gobold.TTF},
		{FontMono, gomono.TTF},
	}
	for _, f := range faces {
		if err := pdf.AddTTFFontData(f.family, f.data); err != nil {
			return nil, fmt.Errorf("register font %q: %w", f.family, err)
		}
	}

	pdf.AddPage()
	return &PDF{pdf: pdf}, nil
}

// SetFont selects the current font family and size.
func (p *PDF) SetFont(family string, size float64) error {
	return p.pdf.SetFont(family, "", size)
}

// Text draws s with its top-left corner at (x, y) in the current font.
func (p *PDF) Text(x, y float64, s string) error {
	p.pdf.SetX(x)
	p.pdf.SetY(y)
	return p.pdf.Cell(nil, s)
}

// TextWidth measures s in the current font.
func (p *PDF) TextWidth(s string) (float64, error) {
	return p.pdf.MeasureTextWidth(s)
}

// Rect strokes an unfilled rectangle with its top-left corner at (x, y).
func (p *PDF) Rect(x, y, w, h float64) {
	p.pdf.RectFromUpperLeftWithStyle(x, y, w, h, "D")
}

// Image draws img scaled to w×h at (x, y).
func (p *PDF) Image(img image.Image, x, y, w, h float64) error {
	return p.pdf.ImageFrom(img, x, y, &gopdf.Rect{W: w, H: h})
}

// WriteTo finalizes the document and writes it to w.
func (p *PDF) WriteTo(w io.Writer) (int64, error) {
	return p.pdf.WriteTo(w)
}
