package cards

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
		check   func(t *testing.T, records []Network)
	}{
		{
			name:  "Array",
			input: `[{"name":"Home","ssid":"home-net","password":"hunter2","coords":[[0,0],[0,1]]},{"name":"Guest","ssid":"guest-net","password":"letmein"}]`,
			want:  2,
			check: func(t *testing.T, records []Network) {
				if got := records[0].Coords; len(got) != 2 || got[0] != (Coord{0, 0}) || got[1] != (Coord{0, 1}) {
					t.Errorf("coords = %v, want [(0, 0) (0, 1)]", got)
				}
				if !records[1].IsDefault() {
					t.Error("record without coords should be the default")
				}
			},
		},
		{
			name:  "SingleObject",
			input: `{"name":"Home","ssid":"home-net","password":"hunter2"}`,
			want:  1,
			check: func(t *testing.T, records []Network) {
				if records[0].SSID != "home-net" {
					t.Errorf("ssid = %q, want %q", records[0].SSID, "home-net")
				}
			},
		},
		{
			name:  "LeadingWhitespace",
			input: "\n\t [{\"name\":\"a\",\"ssid\":\"a\",\"password\":\"p\"}]",
			want:  1,
		},
		{
			name:  "EncryptionDefaultsToWPA",
			input: `[{"name":"a","ssid":"a","password":"p"},{"name":"b","ssid":"b","password":"p","encryption_type":"WEP"}]`,
			want:  2,
			check: func(t *testing.T, records []Network) {
				if got := records[0].EncryptionOrDefault(); got != "WPA" {
					t.Errorf("default encryption = %q, want WPA", got)
				}
				if got := records[1].EncryptionOrDefault(); got != "WEP" {
					t.Errorf("encryption = %q, want WEP", got)
				}
			},
		},
		{
			name:    "MalformedJSON",
			input:   `[{"name":`,
			wantErr: true,
		},
		{
			name:    "BadCoordShape",
			input:   `[{"name":"a","ssid":"a","password":"p","coords":[[1,2,3]]}]`,
			wantErr: true,
		},
		{
			name:    "Empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Load(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("Load() succeeded, want error")
				}
				if !IsCode(err, ErrCodeInvalidInput) {
					t.Errorf("error %v does not carry code %s", err, ErrCodeInvalidInput)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(records) != tt.want {
				t.Fatalf("Load() returned %d records, want %d", len(records), tt.want)
			}
			if tt.check != nil {
				tt.check(t, records)
			}
		})
	}
}
