// Package huequant computes hue histograms, median cut palettes and recolored
// images from flat RGBA pixel buffers, 4 bytes per pixel. Trailing bytes that do
// not fill a pixel are ignored; alpha is ignored on input.
package huequant

import "github.com/carbocation/go-huequant/quantize"

// Histogram counts the pixels of buf per integer hue degree.
func Histogram(buf []byte) quantize.Histogram {
	return quantize.BuildHistogram(quantize.Decode(buf))
}

// Palette runs median cut over buf, at most divisions levels deep, and returns
// one packed 0xRRGGBB color per non-empty cluster. Negative divisions count as 0.
// An empty buffer yields an empty palette.
func Palette(buf []byte, divisions int) []uint32 {
	entries := cut(quantize.Decode(buf), divisions)
	palette := make([]uint32, len(entries))
	for i, e := range entries {
		palette[i] = e.Color.Uint32()
	}
	return palette
}

// Recolor replaces every pixel of buf with the mean color of its median cut
// cluster and forces alpha to 0xff. Pixel order is preserved and trailing
// bytes are copied through, so the result is as long as buf.
func Recolor(buf []byte, divisions int) []byte {
	pixels := quantize.Decode(buf)
	out := quantize.Encode(quantize.Remap(cut(pixels, divisions), len(pixels)))
	return append(out, buf[len(out):]...)
}

func cut(pixels []quantize.Pixel, divisions int) []quantize.Entry {
	if len(pixels) == 0 {
		return nil
	}
	if divisions < 0 {
		divisions = 0
	}
	return quantize.Cut(pixels, divisions)
}
