package render

import (
	"image"
	"io"
)

// Font families registered on every Canvas.
const (
	FontNormal = "normal"
	FontBold   = "bold"
	FontMono   = "mono"
)

// Canvas is the page-drawing surface cards are rendered onto.
//
// Coordinates are top-down PDF points with the origin at the upper-left
// page corner. SetFont selects the face used by subsequent Text and
// TextWidth calls.
type Canvas interface {
	// SetFont selects the current font family and size.
	SetFont(family string, size float64) error

	// Text draws s with its top-left corner at (x, y).
	Text(x, y float64, s string) error

	// TextWidth measures s in the current font.
	TextWidth(s string) (float64, error)

	// Rect strokes an unfilled rectangle.
	Rect(x, y, w, h float64)

	// Image draws img scaled to w×h at (x, y).
	Image(img image.Image, x, y, w, h float64) error

	// WriteTo finalizes the document and writes it to w.
	WriteTo(w io.Writer) (int64, error)
}
