// Package quantize implements hue histograms and median cut color quantization
// over flat RGBA pixel buffers.
package quantize

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// BytesPerPixel is the size of one record in a pixel buffer: red, green, blue, alpha.
const BytesPerPixel = 4

// RGB is an opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

// FromUint32 unpacks a 0xRRGGBB value. Bits above the low 24 are ignored.
func FromUint32(x uint32) RGB {
	return RGB{uint8(x >> 16), uint8(x >> 8), uint8(x)}
}

// Uint32 packs the color as 0xRRGGBB.
func (c RGB) Uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Hex returns the color as a lowercase #rrggbb string.
func (c RGB) Hex() string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

func (c RGB) String() string {
	return c.Hex()
}

// Pixel is one decoded record of a buffer. Index is its record position in the
// source buffer and is never modified after decoding.
type Pixel struct {
	RGB
	Index int
}

func (p Pixel) String() string {
	return fmt.Sprintf("%s@%d", p.Hex(), p.Index)
}

// Decode groups buf into 4-byte records and returns one Pixel per complete
// record. Alpha is ignored and trailing bytes that do not fill a record are dropped.
func Decode(buf []byte) []Pixel {
	n := len(buf) / BytesPerPixel
	pixels := make([]Pixel, n)
	for i := range pixels {
		rec := buf[i*BytesPerPixel : i*BytesPerPixel+BytesPerPixel]
		pixels[i] = Pixel{RGB{rec[0], rec[1], rec[2]}, i}
	}
	return pixels
}

// Encode serializes pixels in slice order, 4 bytes each, with alpha forced to 0xff.
func Encode(pixels []Pixel) []byte {
	buf := make([]byte, len(pixels)*BytesPerPixel)
	for i, p := range pixels {
		rec := buf[i*BytesPerPixel:]
		rec[0], rec[1], rec[2], rec[3] = p.R, p.G, p.B, 0xff
	}
	return buf
}
