package fastatally

import (
	"context"
	"slices"

	"github.com/seqbyte/fastatally/internal/chunk"
	"golang.org/x/sync/errgroup"
)

// recordMarker is the byte that begins a record's description line.
// Matching is byte-literal: a marker anywhere in the buffer starts a
// record, whether or not it sits at the start of a line. This mirrors
// the classic behavior of marker-scanning counters and keeps offsets
// comparable with them.
const recordMarker = '>'

// contextCheckInterval is how many bytes a scan worker processes between
// context cancellation checks.
const contextCheckInterval = 1 << 20

// boundaryIndex is the frozen sequence of record-start offsets.
//
// Invariants after scanBoundaries returns:
//   - strictly ascending, duplicates removed
//   - the final entry equals the buffer length (the sentinel)
//
// Entries i and i+1 delimit record i, so a buffer with k markers yields
// an index of k+1 entries. An empty or marker-free buffer yields just
// the sentinel.
type boundaryIndex []int

// records returns the number of records delimited by the index.
func (bi boundaryIndex) records() int { return len(bi) - 1 }

// scanBoundaries runs the phase-1 discovery pass. The buffer is split
// into one contiguous chunk per worker; each worker scans its chunk for
// record markers and collects absolute offsets into a worker-local
// slice, so the hot loop takes no locks. After all workers join, the
// local slices are merged, the sentinel is appended, and the result is
// sorted and compacted before being returned frozen.
//
// All workers are joined before this returns; record spans are only
// well-defined against a frozen index.
func scanBoundaries(ctx context.Context, data []byte, workers int) (boundaryIndex, error) {
	ranges := chunk.Ranges(len(data), workers)
	local := make([][]int, len(ranges))

	g, ctx := errgroup.WithContext(ctx)
	for i, r := range ranges {
		g.Go(func() error {
			var found []int
			for off := r.Start; off < r.End; {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				stop := min(off+contextCheckInterval, r.End)
				for ; off < stop; off++ {
					if data[off] == recordMarker {
						found = append(found, off)
					}
				}
			}
			local[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	size := 1
	for _, offsets := range local {
		size += len(offsets)
	}
	merged := make([]int, 0, size)
	for _, offsets := range local {
		merged = append(merged, offsets...)
	}
	merged = append(merged, len(data))

	// Disjoint chunks cannot produce duplicate offsets; compact anyway so
	// the strictly-ascending invariant never depends on that.
	slices.Sort(merged)
	merged = slices.Compact(merged)

	return boundaryIndex(merged), nil
}
