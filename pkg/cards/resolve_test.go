package cards

import (
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		records []Network
		rows    int
		cols    int
		want    map[Coord]string // pos → ssid
	}{
		{
			name:    "Empty",
			records: nil,
			rows:    5,
			cols:    2,
			want:    map[Coord]string{},
		},
		{
			name: "ExplicitOnly",
			records: []Network{
				{SSID: "Home", Coords: []Coord{{0, 0}, {1, 1}}},
			},
			rows: 5,
			cols: 2,
			want: map[Coord]string{
				{0, 0}: "Home",
				{1, 1}: "Home",
			},
		},
		{
			name: "DefaultFillsEverything",
			records: []Network{
				{SSID: "Guest"},
			},
			rows: 2,
			cols: 2,
			want: map[Coord]string{
				{0, 0}: "Guest", {0, 1}: "Guest",
				{1, 0}: "Guest", {1, 1}: "Guest",
			},
		},
		{
			name: "ExplicitPlusDefault",
			records: []Network{
				{SSID: "Home", Coords: []Coord{{0, 0}, {0, 1}}},
				{SSID: "Guest"},
			},
			rows: 5,
			cols: 2,
			want: map[Coord]string{
				{0, 0}: "Home", {0, 1}: "Home",
				{1, 0}: "Guest", {1, 1}: "Guest",
				{2, 0}: "Guest", {2, 1}: "Guest",
				{3, 0}: "Guest", {3, 1}: "Guest",
				{4, 0}: "Guest", {4, 1}: "Guest",
			},
		},
		{
			name: "DefaultListedFirstStillFills",
			records: []Network{
				{SSID: "Guest"},
				{SSID: "Home", Coords: []Coord{{2, 1}}},
			},
			rows: 3,
			cols: 2,
			want: map[Coord]string{
				{0, 0}: "Guest", {0, 1}: "Guest",
				{1, 0}: "Guest", {1, 1}: "Guest",
				{2, 0}: "Guest", {2, 1}: "Home",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.records, tt.rows, tt.cols)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Resolve() returned %d placements, want %d", len(got), len(tt.want))
			}
			seen := map[Coord]bool{}
			for _, p := range got {
				if seen[p.Pos] {
					t.Errorf("duplicate position %s in output", p.Pos)
				}
				seen[p.Pos] = true
				if p.Pos.Row < 0 || p.Pos.Row >= tt.rows || p.Pos.Col < 0 || p.Pos.Col >= tt.cols {
					t.Errorf("position %s outside %dx%d grid", p.Pos, tt.rows, tt.cols)
				}
				want, ok := tt.want[p.Pos]
				if !ok {
					t.Errorf("unexpected position %s (ssid %q)", p.Pos, p.Network.SSID)
					continue
				}
				if p.Network.SSID != want {
					t.Errorf("position %s = %q, want %q", p.Pos, p.Network.SSID, want)
				}
			}
		})
	}
}

func TestResolveRowMajorOrder(t *testing.T) {
	records := []Network{{SSID: "Guest"}}
	got, err := Resolve(records, 3, 2)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := []Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("got %d placements, want %d", len(got), len(want))
	}
	for i, p := range got {
		if p.Pos != want[i] {
			t.Errorf("placement[%d].Pos = %s, want %s", i, p.Pos, want[i])
		}
	}
}

// The original tool silently lets the later record win when two records
// claim the same explicit cell. That behavior is deliberate here: this
// test pins it so a move to stricter semantics is an explicit change.
func TestResolveDuplicateExplicitLastWins(t *testing.T) {
	records := []Network{
		{SSID: "First", Coords: []Coord{{1, 1}}},
		{SSID: "Second", Coords: []Coord{{1, 1}}},
	}
	got, err := Resolve(records, 5, 2)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d placements, want 1", len(got))
	}
	if got[0].Network.SSID != "Second" {
		t.Errorf("duplicate claim resolved to %q, want later record %q", got[0].Network.SSID, "Second")
	}
}

func TestResolveNoDefaultSkipsUnclaimed(t *testing.T) {
	records := []Network{{SSID: "Home", Coords: []Coord{{4, 1}}}}
	got, err := Resolve(records, 5, 2)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d placements, want 1 (unclaimed cells must be omitted)", len(got))
	}
	if got[0].Pos != (Coord{4, 1}) {
		t.Errorf("placement.Pos = %s, want (4, 1)", got[0].Pos)
	}
}

func TestResolveValidation(t *testing.T) {
	tests := []struct {
		name      string
		records   []Network
		rows      int
		cols      int
		wantCodes []Code
	}{
		{
			name: "CapacityExceeded",
			records: []Network{
				{SSID: "a", Coords: []Coord{{0, 0}, {0, 1}, {1, 0}}},
				{SSID: "b", Coords: []Coord{{1, 1}, {0, 0}}},
			},
			rows:      2,
			cols:      2,
			wantCodes: []Code{ErrCodeCapacity},
		},
		{
			name: "RowAtBound",
			records: []Network{
				{SSID: "a", Coords: []Coord{{5, 0}}},
			},
			rows:      5,
			cols:      2,
			wantCodes: []Code{ErrCodeCoordinate},
		},
		{
			name: "ColumnAtBound",
			records: []Network{
				{SSID: "a", Coords: []Coord{{0, 2}}},
			},
			rows:      5,
			cols:      2,
			wantCodes: []Code{ErrCodeCoordinate},
		},
		{
			name: "NegativeCoordinate",
			records: []Network{
				{SSID: "a", Coords: []Coord{{-1, 0}}},
			},
			rows:      5,
			cols:      2,
			wantCodes: []Code{ErrCodeCoordinate},
		},
		{
			name: "TwoDefaults",
			records: []Network{
				{SSID: "a"},
				{SSID: "b"},
			},
			rows:      5,
			cols:      2,
			wantCodes: []Code{ErrCodeAmbiguousDefault},
		},
		{
			name: "AllViolationsReportedTogether",
			records: []Network{
				{SSID: "a", Coords: []Coord{{9, 9}, {0, 0}, {0, 1}, {1, 0}, {1, 1}}},
				{SSID: "b"},
				{SSID: "c"},
			},
			rows:      2,
			cols:      2,
			wantCodes: []Code{ErrCodeCoordinate, ErrCodeCapacity, ErrCodeAmbiguousDefault},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.records, tt.rows, tt.cols)
			if err == nil {
				t.Fatal("Resolve() succeeded, want validation error")
			}
			if got != nil {
				t.Errorf("Resolve() returned placements alongside error")
			}
			for _, code := range tt.wantCodes {
				if !IsCode(err, code) {
					t.Errorf("error %v does not carry code %s", err, code)
				}
			}
		})
	}
}
