package cards

import (
	"errors"
)

// Resolve computes which network occupies each cell of a rows×cols grid.
//
// Every coordinate named in a record's Coords claims that cell; when two
// records claim the same cell the later record in input order wins (the
// original tool behaves this way, so it is preserved rather than treated
// as an error). The single default record, if present, fills each cell no
// explicit claim touched. Cells left unclaimed with no default present are
// omitted from the result and never rendered.
//
// The result is ordered row-major: row ascending, then column ascending.
//
// Resolve validates the whole input before assigning anything and returns
// every violation joined into one error:
//   - ErrCodeCapacity: more explicit claims than rows*cols slots
//   - ErrCodeCoordinate: a claim outside the grid bounds
//   - ErrCodeAmbiguousDefault: more than one record without coords
func Resolve(records []Network, rows, cols int) ([]Placement, error) {
	if err := validate(records, rows, cols); err != nil {
		return nil, err
	}

	grid := make(map[Coord]*Network, rows*cols)
	var fallback *Network

	for i := range records {
		rec := &records[i]
		if rec.IsDefault() {
			fallback = rec
			continue
		}
		for _, pos := range rec.Coords {
			grid[pos] = rec // last writer wins
		}
	}

	placements := make([]Placement, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			pos := Coord{Row: row, Col: col}
			rec, ok := grid[pos]
			if !ok {
				rec = fallback
			}
			if rec == nil {
				continue
			}
			placements = append(placements, Placement{Pos: pos, Network: rec})
		}
	}
	return placements, nil
}

// validate checks the whole input and reports all violations together.
func validate(records []Network, rows, cols int) error {
	var errs []error

	claims := 0
	defaults := 0
	for i := range records {
		rec := &records[i]
		if rec.IsDefault() {
			defaults++
			continue
		}
		claims += len(rec.Coords)
		for _, pos := range rec.Coords {
			if pos.Row < 0 || pos.Row >= rows || pos.Col < 0 || pos.Col >= cols {
				errs = append(errs, newError(ErrCodeCoordinate,
					"record %q: coordinate %s outside %dx%d grid", rec.SSID, pos, rows, cols))
			}
		}
	}

	if slots := rows * cols; claims > slots {
		errs = append(errs, newError(ErrCodeCapacity,
			"%d explicit coordinates exceed the %d available slots", claims, slots))
	}
	if defaults > 1 {
		errs = append(errs, newError(ErrCodeAmbiguousDefault,
			"%d records omit coords; only one catch-all default is permitted", defaults))
	}

	return errors.Join(errs...)
}
