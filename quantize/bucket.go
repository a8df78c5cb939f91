package quantize

type colorAxis uint8

// Color axis constants
const (
	red colorAxis = iota
	green
	blue
)

func (a colorAxis) String() string {
	switch a {
	case red:
		return "red"
	case green:
		return "green"
	default:
		return "blue"
	}
}

// channel returns the value of c on the given axis.
func (a colorAxis) channel(c RGB) uint8 {
	switch a {
	case red:
		return c.R
	case green:
		return c.G
	default:
		return c.B
	}
}

// Partition is a group of pixels produced by median cut.
type Partition []Pixel

type constraint struct {
	min uint8
	max uint8
}

func (c *constraint) update(v uint8) {
	if v < c.min {
		c.min = v
	}
	if v > c.max {
		c.max = v
	}
}

func (c *constraint) span() uint8 {
	return c.max - c.min
}

// axis returns the channel with the widest value range.
//
// Red wins only if its range is strictly wider than both others, likewise green.
// Everything else falls to blue, including a red/green tie that dominates a
// narrower blue. That asymmetry is kept on purpose so palettes stay identical
// to previously computed ones.
func (p Partition) axis() colorAxis {
	R := constraint{min: 255}
	G := constraint{min: 255}
	B := constraint{min: 255}
	for _, px := range p {
		R.update(px.R)
		G.update(px.G)
		B.update(px.B)
	}
	r, g, b := R.span(), G.span(), B.span()
	switch {
	case r > g && r > b:
		return red
	case g > r && g > b:
		return green
	default:
		return blue
	}
}

// Mean returns the per-channel average of p, truncated toward zero.
// p must not be empty.
func (p Partition) Mean() RGB {
	var r, g, b uint64
	for _, px := range p {
		r += uint64(px.R)
		g += uint64(px.G)
		b += uint64(px.B)
	}
	n := uint64(len(p))
	return RGB{uint8(r / n), uint8(g / n), uint8(b / n)}
}
