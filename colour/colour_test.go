package colour

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFromHex(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    Colour
		wantErr bool
	}{
		{"with hash", "#ab66ef", Colour{0xab, 0x66, 0xef}, false},
		{"without hash", "ab66ef", Colour{0xab, 0x66, 0xef}, false},
		{"alpha stripped", "#ab66efff", Colour{0xab, 0x66, 0xef}, false},
		{"white", "#ffffff", Colour{0xff, 0xff, 0xff}, false},
		{"too short", "#ff", Colour{}, true},
		{"garbage", "#zzzzzz", Colour{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromHex(tt.hex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromHex(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FromHex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := Colour{R: 0x12, G: 0xab, B: 0x07}
	parsed, err := FromHex(c.Hex())
	if err != nil {
		t.Fatal(err)
	}
	if parsed != c {
		t.Errorf("round trip changed colour: %v -> %v", c, parsed)
	}
}

func TestFromStringIsDeterministic(t *testing.T) {
	if FromString("science") != FromString("science") {
		t.Error("identical strings must map to identical colours")
	}
	if FromString("science") == FromString("people") {
		t.Error("different strings should (almost always) map to different colours")
	}
}

func TestLightened(t *testing.T) {
	dark := Colour{R: 20, G: 40, B: 60}
	light := dark.Lightened()
	if int(light.R)+int(light.G)+int(light.B) <= int(dark.R)+int(dark.G)+int(dark.B) {
		t.Errorf("Lightened(%v) = %v is not lighter", dark, light)
	}

	white := Colour{R: 255, G: 255, B: 255}
	if white.Lightened() != white {
		t.Errorf("white must stay white, got %v", white.Lightened())
	}
}

func TestColourYAML(t *testing.T) {
	theme := DefaultTheme()
	data, err := yaml.Marshal(theme)
	if err != nil {
		t.Fatal(err)
	}

	var loaded Theme
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatal(err)
	}
	if loaded != theme {
		t.Errorf("theme changed over YAML round trip:\n got %+v\nwant %+v", loaded, theme)
	}
}
