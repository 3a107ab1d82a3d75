package fastatally

import "strconv"

// Tally holds nucleotide counts for one sequence range. Only the five
// canonical uppercase symbols are counted; Total is their sum, so it can
// be smaller than the range when the range contains line breaks,
// lowercase bases, or ambiguity codes other than N.
type Tally struct {
	G, C, A, T, N uint64
	Total         uint64
}

// countRange tallies the sequence bytes in [start, end). Bytes other
// than the five canonical symbols are skipped; that is classification
// policy, not an error.
func countRange(data []byte, start, end int) Tally {
	var t Tally
	for i := start; i < end; i++ {
		switch data[i] {
		case 'G':
			t.G++
			t.Total++
		case 'C':
			t.C++
			t.Total++
		case 'A':
			t.A++
			t.Total++
		case 'T':
			t.T++
			t.Total++
		case 'N':
			t.N++
			t.Total++
		}
	}
	return t
}

// add accumulates other into t.
func (t *Tally) add(other Tally) {
	t.G += other.G
	t.C += other.C
	t.A += other.A
	t.T += other.T
	t.N += other.N
	t.Total += other.Total
}

// reportRule is the separator line between the per-symbol counts and the
// total in a rendered report.
const reportRule = "-----------------------------------"

// appendReport renders the fixed report layout for one record and
// appends it to dst:
//
//	\n<description>\n\n
//	G: <count>\n
//	C: <count>\n
//	A: <count>\n
//	T: <count>\n
//	N: <count>\n
//	-----------------------------------
//	\nTotal: <count>\n
//
// The layout is byte-stable: any two runs that compute the same counts
// render identical blocks.
func (t Tally) appendReport(dst []byte, desc []byte) []byte {
	dst = append(dst, '\n')
	dst = append(dst, desc...)
	dst = append(dst, '\n', '\n')
	dst = appendCount(dst, 'G', t.G)
	dst = appendCount(dst, 'C', t.C)
	dst = appendCount(dst, 'A', t.A)
	dst = appendCount(dst, 'T', t.T)
	dst = appendCount(dst, 'N', t.N)
	dst = append(dst, reportRule...)
	dst = append(dst, "\nTotal: "...)
	dst = strconv.AppendUint(dst, t.Total, 10)
	dst = append(dst, '\n')
	return dst
}

func appendCount(dst []byte, symbol byte, n uint64) []byte {
	dst = append(dst, symbol, ':', ' ')
	dst = strconv.AppendUint(dst, n, 10)
	dst = append(dst, '\n')
	return dst
}
