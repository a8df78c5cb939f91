package quantize

// Select partially reorders v in place so that v[len(v)/2] holds the element a
// full sort under before would put there, and returns that index. Elements left
// of it do not sort after it and elements right of it do not sort before it.
//
// before(candidate, pivot) reports whether candidate sorts strictly ahead of pivot
// and must be a strict weak ordering. Each round splits the active range around
// its last element into before, equal and after runs (quickselect), so runs of
// equal values are settled in one pass. The expected cost is linear and the worst
// case, on adversarial orderings of distinct values, quadratic. v must not be empty.
func Select[T any](v []T, before func(candidate, pivot T) bool) int {
	l, r := 0, len(v)-1
	k := len(v) / 2
	for {
		pivot := v[r]
		// [l,lt) sorts before pivot, [lt,i) equals it, (gt,r] sorts after it.
		lt, i, gt := l, l, r
		for i <= gt {
			switch {
			case before(v[i], pivot):
				v[lt], v[i] = v[i], v[lt]
				lt++
				i++
			case before(pivot, v[i]):
				v[i], v[gt] = v[gt], v[i]
				gt--
			default:
				i++
			}
		}
		switch {
		case k < lt:
			r = lt - 1
		case k > gt:
			l = gt + 1
		default:
			return k
		}
	}
}
