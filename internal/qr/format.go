package qr

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is the serialization format of a generated image.
type Format int

const (
	FormatPNG Format = iota
	FormatJPG
	FormatSVG
)

// Formats lists all supported formats in menu order.
func Formats() []Format {
	return []Format{FormatPNG, FormatJPG, FormatSVG}
}

// ParseFormat parses a format name case-insensitively.
// "jpeg" is accepted as an alias for jpg.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPG, nil
	case "svg":
		return FormatSVG, nil
	default:
		return FormatPNG, fmt.Errorf("unknown format %q (want png, jpg, or svg)", s)
	}
}

func (f Format) String() string {
	switch f {
	case FormatJPG:
		return "jpg"
	case FormatSVG:
		return "svg"
	default:
		return "png"
	}
}

// Ext returns the canonical file extension, dot included.
func (f Format) Ext() string {
	return "." + f.String()
}

// MatchesPath reports whether path's extension belongs to this format.
// JPG accepts both .jpg and .jpeg.
func (f Format) MatchesPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	switch f {
	case FormatJPG:
		return ext == ".jpg" || ext == ".jpeg"
	case FormatSVG:
		return ext == ".svg"
	default:
		return ext == ".png"
	}
}
