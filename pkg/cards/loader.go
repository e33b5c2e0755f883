package cards

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode"
)

// Load decodes Wi-Fi network records from r.
//
// The input is a JSON array of record objects. A single bare object is
// also accepted and treated as a one-element list, matching the original
// single-network data files.
func Load(r io.Reader) ([]Network, error) {
	br := bufio.NewReader(r)

	first, err := firstToken(br)
	if err != nil {
		return nil, wrapError(ErrCodeInvalidInput, err, "read input")
	}

	dec := json.NewDecoder(br)
	if first == '{' {
		var single Network
		if err := dec.Decode(&single); err != nil {
			return nil, wrapError(ErrCodeInvalidInput, err, "decode record")
		}
		return []Network{single}, nil
	}

	var records []Network
	if err := dec.Decode(&records); err != nil {
		return nil, wrapError(ErrCodeInvalidInput, err, "decode records")
	}
	return records, nil
}

// LoadFile reads and decodes the network records in path.
func LoadFile(path string) ([]Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// firstToken peeks at the first non-space byte without consuming it.
func firstToken(br *bufio.Reader) (byte, error) {
	for i := 1; ; i++ {
		buf, err := br.Peek(i)
		if err != nil {
			return 0, err
		}
		b := buf[i-1]
		if !unicode.IsSpace(rune(b)) {
			return b, nil
		}
	}
}
