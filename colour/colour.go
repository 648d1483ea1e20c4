// Package colour generates, manipulates and manages the colours used when
// drawing a timeline.
package colour

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Colour is an opaque RGB colour.
type Colour struct {
	R, G, B uint8
}

// FromRGB builds a colour from its components.
func FromRGB(r, g, b uint8) Colour {
	return Colour{R: r, G: g, B: b}
}

// FromHex parses a hex colour such as "#ab66ef" or "ab66ef". An alpha
// component ("#ab66efff") is accepted and discarded.
func FromHex(hex string) (Colour, error) {
	if len(hex) == 8 || len(hex) == 9 {
		hex = hex[:len(hex)-2]
	}
	if len(hex) == 6 {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Colour{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return Colour{R: r, G: g, B: b}, nil
}

// MustHex is FromHex for known-good literals; it panics on a parse error.
func MustHex(hex string) Colour {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the colour as "#rrggbb".
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FromString derives a colour from an arbitrary string in a repeatable way
// (a naive byte-sum hash). Identical strings always yield the same colour.
func FromString(s string) Colour {
	var div [3]uint16
	for i, b := range []byte(s) {
		div[i%3] = (div[i%3] + uint16(b)) % 256
	}
	return Colour{R: uint8(div[0]), G: uint8(div[1]), B: uint8(div[2])}
}

// Lightened returns the colour blended part-way toward white. Used for
// hover highlights and for fading year gridlines.
func (c Colour) Lightened() Colour {
	base := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	white := colorful.Color{R: 1, G: 1, B: 1}
	blended := base.BlendLab(white, 0.2).Clamped()
	r, g, b := blended.RGB255()
	return Colour{R: r, G: g, B: b}
}

// MarshalYAML encodes the colour as a hex string.
func (c Colour) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}

// UnmarshalYAML decodes the colour from a hex string.
func (c *Colour) UnmarshalYAML(value *yaml.Node) error {
	var hex string
	if err := value.Decode(&hex); err != nil {
		return err
	}
	parsed, err := FromHex(hex)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
