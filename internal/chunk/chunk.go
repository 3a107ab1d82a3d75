// Package chunk partitions a byte range into contiguous worker chunks.
package chunk

// Range is a half-open byte range [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// Ranges splits [0, size) into n contiguous, non-overlapping ranges that
// together cover the interval exactly. The last range absorbs the division
// remainder. When n exceeds size, all ranges before the last are empty
// (Start == End) and the last covers the whole interval.
// n must be >= 1.
func Ranges(size, n int) []Range {
	per := size / n
	out := make([]Range, n)
	for i := 0; i < n; i++ {
		start := i * per
		end := start + per
		if i == n-1 {
			end = size
		}
		out[i] = Range{Start: start, End: end}
	}
	return out
}
