package quantize

import (
	"fmt"
	"sort"
)

// Remap overwrites every member of every entry with the entry's color and
// returns all n members ordered by their original Index.
//
// The members of entries must together be exactly the pixels decoded from one
// buffer of n pixels; Remap panics otherwise.
func Remap(entries []Entry, n int) []Pixel {
	out := make([]Pixel, 0, n)
	for _, e := range entries {
		for i := range e.Members {
			e.Members[i].RGB = e.Color
		}
		out = append(out, e.Members...)
	}
	if len(out) != n {
		panic(fmt.Sprintf("quantize: remap got %d pixels, want %d", len(out), n))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}
