package quantize

import "math"

// HSL is a color in the hue/saturation/lightness model.
// H is in degrees [0, 360), S and L are percentages [0, 100].
type HSL struct {
	H, S, L float64
}

// HSL converts c to the hue/saturation/lightness model.
func (c RGB) HSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	l := (max + min) / 2

	// Exact comparison: pure grays must land in bucket 0.
	if max == min {
		return HSL{0, 0, l * 100}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6

	return HSL{h * 360, s * 100, l * 100}
}

// Bucket returns the integer hue bin of h, in [0, HueBins).
func (h HSL) Bucket() int {
	return int(math.Floor(h.H)) % HueBins
}
