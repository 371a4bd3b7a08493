package ui

import (
	"fmt"
	"image"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// RenderPreview draws img as truecolor half-block rows for the
// terminal: each character cell stacks two pixels, the upper one on the
// glyph and the lower one on its background. The image is scaled to
// cols pixel columns with nearest-neighbor so module edges stay sharp.
func RenderPreview(img image.Image, cols int) string {
	if img == nil || cols <= 0 {
		return ""
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}

	rows := cols * b.Dy() / b.Dx()
	if rows == 0 {
		rows = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols, rows))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)

	var sb strings.Builder
	for y := 0; y < rows; y += 2 {
		for x := 0; x < cols; x++ {
			top := dst.RGBAAt(x, y)
			bottom := top
			if y+1 < rows {
				bottom = dst.RGBAAt(x, y+1)
			}
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		sb.WriteString("\x1b[0m\n")
	}
	return sb.String()
}
