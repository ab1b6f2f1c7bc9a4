package color

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// RGB is a single 24 bit color as transmitted to the device.
// It is serialized as a "#rrggbb" string.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

var (
	White = RGB{0xff, 0xff, 0xff}
	Black = RGB{0x00, 0x00, 0x00}
)

// ParseHex parses a color given as exactly 6 hex digits, optionally prefixed by '#'
func ParseHex(value string) (RGB, error) {
	digits := strings.TrimPrefix(value, "#")
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("invalid color '%s': expected 6 hex digits", value)
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color '%s': %w", value, err)
	}
	return RGB{R: b[0], G: b[1], B: b[2]}, nil
}

// MustParseHex is like ParseHex but panics on invalid input.
// Only use it for constant values.
func MustParseHex(value string) RGB {
	c, err := ParseHex(value)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseHexList parses all given values, failing on the first invalid one
func ParseHexList(values []string) ([]RGB, error) {
	result := make([]RGB, 0, len(values))
	for i, v := range values {
		c, err := ParseHex(v)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		result = append(result, c)
	}
	return result, nil
}

// Hex returns the lowercase "rrggbb" representation
func (c RGB) Hex() string {
	return hex.EncodeToString([]byte{c.R, c.G, c.B})
}

// String returns the lowercase "#rrggbb" representation
func (c RGB) String() string {
	return "#" + c.Hex()
}

// Bytes returns the color in device byte order
func (c RGB) Bytes() []byte {
	return []byte{c.R, c.G, c.B}
}

// Equal reports whether both sequences contain the same colors in the same order
func Equal(a []RGB, b []RGB) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Copy returns a copy of the given sequence, never nil
func Copy(colors []RGB) []RGB {
	result := make([]RGB, len(colors))
	copy(result, colors)
	return result
}

func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
