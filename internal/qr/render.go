package qr

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// RenderOptions control how a matrix becomes an image.
type RenderOptions struct {
	ModuleSize int // pixels per module
	Border     int // quiet-zone modules on each side
	Fill       RGB
	Background RGB
}

func (r Request) renderOptions() RenderOptions {
	return RenderOptions{
		ModuleSize: r.ModuleSize,
		Border:     r.Border,
		Fill:       r.Fill,
		Background: r.Background,
	}
}

// RenderImage rasterizes the matrix: each module becomes a
// ModuleSize×ModuleSize block, with Border modules of background color
// on every side. The two-color palette keeps PNG output small.
func RenderImage(m *Matrix, opts RenderOptions) *image.Paletted {
	n := m.Size()
	total := (n + 2*opts.Border) * opts.ModuleSize

	img := image.NewPaletted(
		image.Rect(0, 0, total, total),
		color.Palette{opts.Background, opts.Fill},
	)
	// Index 0 (background) is the zero value, so only dark modules
	// need painting.
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !m.Dark(x, y) {
				continue
			}
			px := (x + opts.Border) * opts.ModuleSize
			py := (y + opts.Border) * opts.ModuleSize
			for dy := 0; dy < opts.ModuleSize; dy++ {
				row := (py+dy)*img.Stride + px
				for dx := 0; dx < opts.ModuleSize; dx++ {
					img.Pix[row+dx] = 1
				}
			}
		}
	}
	return img
}

// RenderSVG builds a vector document for the matrix: a background
// rectangle plus one rectangle per dark module.
func RenderSVG(m *Matrix, opts RenderOptions) []byte {
	n := m.Size()
	ms := opts.ModuleSize
	total := (n + 2*opts.Border) * ms

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		total, total, total, total)
	b.WriteByte('\n')
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s"/>`, opts.Background)
	b.WriteByte('\n')

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !m.Dark(x, y) {
				continue
			}
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
				(x+opts.Border)*ms, (y+opts.Border)*ms, ms, ms, opts.Fill)
			b.WriteByte('\n')
		}
	}

	b.WriteString("</svg>\n")
	return []byte(b.String())
}
