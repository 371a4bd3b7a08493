package qr

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// RGB is a color triplet. It implements image/color.Color so it can be
// handed directly to the renderer and the image encoders.
type RGB struct {
	R, G, B uint8
}

// Default render colors.
var (
	Black = RGB{0x00, 0x00, 0x00}
	White = RGB{0xFF, 0xFF, 0xFF}
)

// RGBA implements color.Color. RGB is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// String returns the color as "#RRGGBB".
func (c RGB) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// namedColors is the palette offered by the terminal color picker.
var namedColors = map[string]RGB{
	"black":  {0x00, 0x00, 0x00},
	"white":  {0xFF, 0xFF, 0xFF},
	"red":    {0xFF, 0x00, 0x00},
	"green":  {0x00, 0x80, 0x00},
	"blue":   {0x00, 0x00, 0xFF},
	"yellow": {0xFF, 0xFF, 0x00},
	"orange": {0xFF, 0xA5, 0x00},
	"purple": {0x80, 0x00, 0x80},
	"gray":   {0x80, 0x80, 0x80},
	"navy":   {0x00, 0x00, 0x80},
}

// ColorNames returns the accepted color names in sorted order.
func ColorNames() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ParseRGB parses "#RRGGBB", "RRGGBB", "#RGB", or a named color.
func ParseRGB(s string) (RGB, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return RGB{}, fmt.Errorf("empty color")
	}

	if c, ok := namedColors[in]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(in, "#")
	switch len(hex) {
	case 3:
		// Shorthand: each digit doubles, "f0c" means "ff00cc".
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return RGB{}, fmt.Errorf("invalid color %q (want #RRGGBB or a color name)", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q (want #RRGGBB or a color name)", s)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
