package quantize

// HueBins is the number of one-degree bins in a Histogram.
const HueBins = 360

// Histogram counts pixels per integer hue degree.
type Histogram [HueBins]int

// BuildHistogram buckets the hue of every pixel. Empty input yields all zeros.
func BuildHistogram(pixels []Pixel) Histogram {
	var hist Histogram
	for _, p := range pixels {
		hist[p.HSL().Bucket()]++
	}
	return hist
}

// Total returns the sum of all bins.
func (h *Histogram) Total() int {
	var n int
	for _, c := range h {
		n += c
	}
	return n
}
