package fastatally

// recordSpan is the derived view of one record: its description line and
// the half-open byte range holding its sequence data. Spans are computed
// per record from two consecutive boundary index entries and never
// persisted.
type recordSpan struct {
	desc     []byte // Description bytes, marker included, terminator excluded
	seqStart int    // Offset of the description's line terminator
	seqEnd   int    // Next boundary (or the sentinel)
}

// extractDescription reads the description line that begins at the record
// marker at offset start. It scans forward to the first '\n' and returns
// the description bytes (marker included, terminator excluded) together
// with the terminator's offset, which is where the sequence range begins.
// A description that runs to the end of the buffer is terminated there.
//
// The returned slice aliases the buffer; it is immutable for the run.
func extractDescription(data []byte, start int) (desc []byte, end int) {
	end = len(data)
	for i := start; i < len(data); i++ {
		if data[i] == '\n' {
			end = i
			break
		}
	}
	return data[start:end], end
}

// span derives record i's recordSpan from the frozen index.
func (bi boundaryIndex) span(data []byte, i int) recordSpan {
	desc, seqStart := extractDescription(data, bi[i])
	return recordSpan{
		desc:     desc,
		seqStart: seqStart,
		seqEnd:   bi[i+1],
	}
}
