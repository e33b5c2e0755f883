// Package layout holds the page geometry for a sheet of cards.
//
// All dimensions are PDF points (1 inch = 72 pt). The zero-configuration
// geometry is a US Letter sheet of 3.5"×2" business cards in a 5×2 grid,
// matching Avery-style perforated card stock. A TOML file can override
// any field so tests and unusual stock can vary the grid without global
// state.
package layout

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mtik00/wifi-business-cards/pkg/cards"
)

// Inch is one inch in PDF points.
const Inch = 72.0

// Layout describes the card grid on a page. Values are immutable once
// constructed; pass copies, never share pointers.
type Layout struct {
	// Page dimensions in points.
	PageWidth  float64 `toml:"page_width"`
	PageHeight float64 `toml:"page_height"`

	// One card cell.
	CardWidth  float64 `toml:"card_width"`
	CardHeight float64 `toml:"card_height"`

	// XStart is the distance from the left page edge to the grid.
	// YStart is the distance from the bottom page edge to the grid,
	// kept bottom-up because card stock is specified that way.
	XStart float64 `toml:"x_start"`
	YStart float64 `toml:"y_start"`

	// In-card drawing insets.
	XOffset float64 `toml:"x_offset"`
	YOffset float64 `toml:"y_offset"`

	// Grid dimensions.
	Rows    int `toml:"rows"`
	Columns int `toml:"columns"`

	// QRSize is the rendered edge length of the QR code.
	QRSize float64 `toml:"qr_size"`

	// FontSize is the base text size; the password line may shrink below it.
	FontSize float64 `toml:"font_size"`
}

// Letter returns the default geometry: 5×2 cards of 3.5"×2" on US Letter.
func Letter() Layout {
	return Layout{
		PageWidth:  8.5 * Inch,
		PageHeight: 11 * Inch,
		CardWidth:  3.5 * Inch,
		CardHeight: 2 * Inch,
		XStart:     0.75 * Inch,
		YStart:     0.52 * Inch,
		XOffset:    0.1 * Inch,
		YOffset:    0.1 * Inch,
		Rows:       5,
		Columns:    2,
		QRSize:     0.9 * Inch,
		FontSize:   14,
	}
}

// LoadFile merges a TOML geometry file over the Letter defaults.
// Fields absent from the file keep their default values.
func LoadFile(path string) (Layout, error) {
	l := Letter()
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, err
	}
	if err := toml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Validate checks that the geometry is drawable.
func (l Layout) Validate() error {
	if l.Rows <= 0 || l.Columns <= 0 {
		return fmt.Errorf("grid must have positive dimensions, got %dx%d", l.Rows, l.Columns)
	}
	if l.CardWidth <= 0 || l.CardHeight <= 0 {
		return fmt.Errorf("card dimensions must be positive, got %.1fx%.1f", l.CardWidth, l.CardHeight)
	}
	if w := l.XStart + float64(l.Columns)*l.CardWidth; w > l.PageWidth {
		return fmt.Errorf("grid width %.1fpt exceeds page width %.1fpt", w, l.PageWidth)
	}
	if h := l.YStart + float64(l.Rows)*l.CardHeight; h > l.PageHeight {
		return fmt.Errorf("grid height %.1fpt exceeds page height %.1fpt", h, l.PageHeight)
	}
	return nil
}

// Cells returns the number of card slots on the page.
func (l Layout) Cells() int { return l.Rows * l.Columns }

// CardOrigin returns the top-left corner of the cell at pos in top-down
// page coordinates. YStart is measured from the page bottom and row 0 sits
// nearest the bottom margin, so the bottom-up origin is converted here.
func (l Layout) CardOrigin(pos cards.Coord) (x, y float64) {
	x = l.XStart + float64(pos.Col)*l.CardWidth
	y = l.PageHeight - l.YStart - float64(pos.Row+1)*l.CardHeight
	return x, y
}

// InteriorWidth is the usable width inside one card, between the insets.
func (l Layout) InteriorWidth() float64 {
	return l.CardWidth - 2*l.XOffset
}
