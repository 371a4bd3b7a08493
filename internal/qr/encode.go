package qr

import (
	qrcode "github.com/skip2/go-qrcode"

	apperr "github.com/qrstudio/qrstudio/internal/errors"
)

// Matrix is the QR module grid for some content, quiet zone excluded.
// The renderer adds the configured border around it.
type Matrix struct {
	modules [][]bool
}

// Size returns the number of modules per side.
func (m *Matrix) Size() int {
	return len(m.modules)
}

// Dark reports whether the module at (x, y) is a fill-colored cell.
func (m *Matrix) Dark(x, y int) bool {
	return m.modules[y][x]
}

// Encode produces the module matrix for content at the given recovery
// level. Content the library cannot encode (typically too long for the
// level) is reported as an encoding error.
func Encode(content string, level Recovery) (*Matrix, error) {
	code, err := qrcode.New(content, level.toLib())
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrEncoding, "content cannot be encoded as a QR code", err)
	}
	code.DisableBorder = true

	return &Matrix{modules: trimQuietZone(code.Bitmap())}, nil
}

func (r Recovery) toLib() qrcode.RecoveryLevel {
	switch r {
	case RecoveryLow:
		return qrcode.Low
	case RecoveryHigh:
		return qrcode.High
	case RecoveryHighest:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// trimQuietZone strips any uniform light margin the library left around
// the symbol. The finder patterns always touch the symbol edge, so the
// bounding box of dark modules is exactly the symbol.
func trimQuietZone(bitmap [][]bool) [][]bool {
	n := len(bitmap)
	if n == 0 {
		return bitmap
	}

	minX, minY := n, n
	maxX, maxY := -1, -1
	for y := 0; y < n; y++ {
		for x := 0; x < len(bitmap[y]); x++ {
			if !bitmap[y][x] {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return bitmap
	}

	trimmed := make([][]bool, maxY-minY+1)
	for y := range trimmed {
		trimmed[y] = bitmap[minY+y][minX : maxX+1]
	}
	return trimmed
}
