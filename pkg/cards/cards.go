package cards

import (
	"encoding/json"
	"fmt"
)

// DefaultEncryption is the QR payload encryption tag used when a record
// does not specify one.
const DefaultEncryption = "WPA"

// Coord is a (row, column) address within the card grid.
// Rows and columns are zero-based.
type Coord struct {
	Row int
	Col int
}

// String formats the coordinate as "(row, col)".
func (c Coord) String() string { return fmt.Sprintf("(%d, %d)", c.Row, c.Col) }

// UnmarshalJSON decodes a coordinate from a two-element [row, col] array.
func (c *Coord) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("coordinate must be a [row, column] pair, got %d elements", len(pair))
	}
	c.Row, c.Col = pair[0], pair[1]
	return nil
}

// MarshalJSON encodes the coordinate as a [row, col] array.
func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.Row, c.Col})
}

// Network is one Wi-Fi network entry from the input file.
//
// A record with a non-empty Coords list claims those grid cells
// explicitly. A record without Coords is the catch-all default that
// fills every unclaimed cell; at most one such record may appear in an
// input set.
type Network struct {
	Name       string  `json:"name"`
	SSID       string  `json:"ssid"`
	Password   string  `json:"password"`
	Encryption string  `json:"encryption_type,omitempty"`
	Coords     []Coord `json:"coords,omitempty"`
}

// IsDefault reports whether this record is the catch-all default.
func (n *Network) IsDefault() bool { return len(n.Coords) == 0 }

// EncryptionOrDefault returns the encryption tag, falling back to WPA.
func (n *Network) EncryptionOrDefault() string {
	if n.Encryption == "" {
		return DefaultEncryption
	}
	return n.Encryption
}

// Placement maps one grid cell to the network drawn there.
type Placement struct {
	Pos     Coord
	Network *Network
}
