package render

// MinFontSize is the floor for the password shrink loop. Below this the
// text is unreadable anyway and the loop must terminate for strings that
// never fit.
const MinFontSize = 4

// MeasureFunc reports the rendered width of s at the given font size.
type MeasureFunc func(s string, size float64) (float64, error)

// FitSize returns the largest font size not above start at which s fits
// within maxWidth, stepping down one point at a time. If s does not fit
// even at floor, floor is returned; the caller accepts the clipping at
// that point rather than rendering invisible text.
func FitSize(s string, maxWidth, start, floor float64, measure MeasureFunc) (float64, error) {
	size := start
	for size > floor {
		w, err := measure(s, size)
		if err != nil {
			return 0, err
		}
		if w <= maxWidth {
			return size, nil
		}
		size--
	}
	return floor, nil
}
