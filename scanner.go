package fastatally

import (
	"context"
	"sync"

	tallyerrors "github.com/seqbyte/fastatally/errors"
	"golang.org/x/sync/errgroup"
)

// reportSizeHint is the rendered size of a typical report block beyond
// its description line.
const reportSizeHint = 96

// Stats summarizes a completed scan.
type Stats struct {
	Records   int   // Number of records found and reported
	BufferLen int   // Length of the scanned buffer in bytes
	Combined  Tally // Counts summed over every record
}

// Scan runs the two-phase frequency pass over src and sends one rendered
// report per record to sink.
//
// Phase 1 discovers record boundaries with the configured number of
// parallel chunk scanners (WithWorkers, default 1) and freezes the
// boundary index at their join barrier. Phase 2
// then processes records under a pool bounded to the same worker count:
// each task derives its record's span, tallies the sequence range,
// renders the report, and hands it to the sink. Phase 2 never begins
// before the index is frozen, and Scan does not return until every
// record task has joined.
//
// Reports reach the sink in completion order, which is unspecified.
// Counts are a pure function of the buffer, so the worker count changes
// scheduling only, never any record's report.
//
// A buffer with no record markers (or no bytes at all) yields zero
// reports and a nil error.
func Scan(ctx context.Context, src *Source, sink ReportSink, opts ...Option) (*Stats, error) {
	if src == nil {
		return nil, tallyerrors.ErrNilSource
	}
	if sink == nil {
		return nil, tallyerrors.ErrNilSink
	}
	if src.closed.Load() {
		return nil, tallyerrors.ErrSourceClosed
	}

	cfg := defaultScanConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.workers < 1 {
		return nil, tallyerrors.ErrInvalidWorkers
	}

	data := src.Bytes()

	// Phase 1: boundary discovery. scanBoundaries joins all chunk
	// scanners before returning, so the index is frozen here.
	index, err := scanBoundaries(ctx, data, cfg.workers)
	if err != nil {
		return nil, err
	}

	// Phase 2: per-record counting under a bounded pool. SetLimit caps
	// in-flight tasks at the worker count regardless of record count.
	var (
		mu       sync.Mutex
		done     int
		combined Tally
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i := 0; i < index.records(); i++ {
		if gctx.Err() != nil {
			break // Stop dispatching once a task failed or ctx was cancelled
		}
		g.Go(func() error {
			span := index.span(data, i)
			tally := countRange(data, span.seqStart, span.seqEnd)

			report := tally.appendReport(make([]byte, 0, len(span.desc)+reportSizeHint), span.desc)
			if err := sink.WriteReport(report); err != nil {
				return err
			}

			mu.Lock()
			combined.add(tally)
			done++
			if cfg.progress != nil {
				cfg.progress(done)
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A cancelled caller context can end dispatch with every launched task
	// succeeding; surface the cancellation rather than partial stats.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Stats{
		Records:   index.records(),
		BufferLen: len(data),
		Combined:  combined,
	}, nil
}
