package wifi

import (
	"testing"

	"github.com/mtik00/wifi-business-cards/pkg/cards"
)

func TestPayload(t *testing.T) {
	tests := []struct {
		name    string
		network cards.Network
		want    string
	}{
		{
			name:    "DefaultsToWPA",
			network: cards.Network{SSID: "home-net", Password: "hunter2"},
			want:    "WIFI:T:WPA;S:home-net;P:hunter2;;",
		},
		{
			name:    "ExplicitEncryption",
			network: cards.Network{SSID: "legacy", Password: "p", Encryption: "WEP"},
			want:    "WIFI:T:WEP;S:legacy;P:p;;",
		},
		{
			name:    "EmptyPassword",
			network: cards.Network{SSID: "open-net"},
			want:    "WIFI:T:WPA;S:open-net;P:;;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Payload(&tt.network); got != tt.want {
				t.Errorf("Payload() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQRCode(t *testing.T) {
	n := cards.Network{SSID: "home-net", Password: "hunter2"}
	img, err := QRCode(&n)
	if err != nil {
		t.Fatalf("QRCode() error = %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != qrPixels || bounds.Dy() != qrPixels {
		t.Errorf("QR bounds = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), qrPixels, qrPixels)
	}
}
