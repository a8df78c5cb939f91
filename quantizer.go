package huequant

import (
	"image"
	"image/color"
	"image/draw"
	"math/bits"

	"github.com/carbocation/go-huequant/quantize"
	"github.com/soniakeys/quant"
)

// maxPalettedDivisions keeps Paletted within the 256 entries an
// image.Paletted can index.
const maxPalettedDivisions = 8

// MedianCutQuantizer implements the go draw.Quantizer interface using the Median Cut method
type MedianCutQuantizer struct {
	// Split depth used by Paletted, Palette and Recolor.
	// Quantize derives the depth from the palette capacity instead.
	Divisions int
	// Whether to create a transparent entry
	AddTransparent bool
}

// Pixels flattens m into a 4 bytes per pixel, non-premultiplied RGBA buffer
// in row-major order.
func Pixels(m image.Image) []byte {
	b := m.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), m, b.Min, draw.Src)
	return dst.Pix
}

// entries decodes m and runs median cut on it.
func (q MedianCutQuantizer) entries(m image.Image, divisions int) []quantize.Entry {
	return cut(quantize.Decode(Pixels(m)), divisions)
}

// palettize appends the color of every entry to p, then the transparent entry if requested
func (q MedianCutQuantizer) palettize(p color.Palette, entries []quantize.Entry, addTransparent bool) color.Palette {
	for _, e := range entries {
		p = append(p, color.RGBA{e.Color.R, e.Color.G, e.Color.B, 255})
	}
	if addTransparent {
		p = append(p, color.RGBA{0, 0, 0, 0})
	}
	return p
}

// Quantize appends up to cap(p)-len(p) colors to p. The split depth is the
// largest one whose 2^depth clusters fit in the remaining capacity.
func (q MedianCutQuantizer) Quantize(p color.Palette, m image.Image) color.Palette {
	numColors := cap(p) - len(p)
	addTransparent := q.AddTransparent
	if addTransparent {
		for _, c := range p {
			if _, _, _, a := c.RGBA(); a == 0 {
				addTransparent = false
			}
		}
		if addTransparent {
			numColors--
		}
	}
	if numColors <= 0 {
		return q.palettize(p, nil, addTransparent && numColors == 0)
	}
	divisions := bits.Len(uint(numColors)) - 1
	return q.palettize(p, q.entries(m, divisions), addTransparent)
}

// Palette returns the median cut palette of m as a nearest-color palette.
func (q MedianCutQuantizer) Palette(m image.Image) quant.Palette {
	return quant.LinearPalette{Palette: q.palettize(nil, q.entries(m, q.Divisions), q.AddTransparent)}
}

// Paletted maps every pixel of m to the index of its cluster color.
// Divisions above 8, or 7 with AddTransparent, are clamped.
func (q MedianCutQuantizer) Paletted(m image.Image) *image.Paletted {
	limit := maxPalettedDivisions
	if q.AddTransparent {
		limit--
	}
	divisions := q.Divisions
	if divisions > limit {
		divisions = limit
	}

	b := m.Bounds()
	entries := q.entries(m, divisions)
	dst := image.NewPaletted(b, q.palettize(nil, entries, q.AddTransparent))
	w := b.Dx()
	for i, e := range entries {
		for _, px := range e.Members {
			dst.SetColorIndex(b.Min.X+px.Index%w, b.Min.Y+px.Index/w, uint8(i))
		}
	}
	return dst
}

// Recolor returns a copy of m with every pixel replaced by its cluster color.
func (q MedianCutQuantizer) Recolor(m image.Image) *image.NRGBA {
	b := m.Bounds()
	return &image.NRGBA{
		Pix:    Recolor(Pixels(m), q.Divisions),
		Stride: 4 * b.Dx(),
		Rect:   b,
	}
}
