package quantize

// split partitions p in place around the median of its widest channel.
// hi holds pixels strictly above the median and lo the rest, so ties all land
// in lo. Both halves alias p's backing array; either may be empty. hi is
// capped so appending to it never writes into lo.
func (p Partition) split() (hi, lo Partition) {
	axis := p.axis()
	// Ordering high-to-low makes index len/2 the lower median.
	m := Select(p, func(c, pivot Pixel) bool {
		return axis.channel(c.RGB) > axis.channel(pivot.RGB)
	})
	median := axis.channel(p[m].RGB)

	i := 0
	for j := range p {
		if axis.channel(p[j].RGB) > median {
			p[i], p[j] = p[j], p[i]
			i++
		}
	}
	return p[:i:i], p[i:]
}

// MedianCut recursively splits pixels at most divisions levels deep and returns
// the leaf partitions, hi branch before lo branch. Every pixel ends up in
// exactly one leaf. Empty leaves are dropped below the top level; a call with
// no pixels returns a single empty partition.
//
// The leaves share the backing array of pixels, which is reordered.
func MedianCut(pixels []Pixel, divisions int) []Partition {
	p := Partition(pixels)
	if divisions <= 0 || len(p) <= 1 {
		return []Partition{p}
	}

	hi, lo := p.split()
	parts := append(MedianCut(hi, divisions-1), MedianCut(lo, divisions-1)...)

	out := parts[:0]
	for _, part := range parts {
		if len(part) > 0 {
			out = append(out, part)
		}
	}
	return out
}

// Entry is one palette color together with the pixels it represents.
type Entry struct {
	Color   RGB
	Members Partition
}

// Cut runs median cut over pixels and averages each leaf.
// It returns nil when there are no pixels.
func Cut(pixels []Pixel, divisions int) []Entry {
	if len(pixels) == 0 {
		return nil
	}
	parts := MedianCut(pixels, divisions)
	entries := make([]Entry, len(parts))
	for i, part := range parts {
		entries[i] = Entry{part.Mean(), part}
	}
	return entries
}

// Colors returns the representative color of every entry, in order.
func Colors(entries []Entry) []RGB {
	colors := make([]RGB, len(entries))
	for i, e := range entries {
		colors[i] = e.Color
	}
	return colors
}
