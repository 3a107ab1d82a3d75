// Package fastatally computes per-record nucleotide frequency tables for
// FASTA files using a two-phase parallel scan over a memory-mapped buffer.
//
// Phase 1 partitions the buffer into one contiguous chunk per worker and
// discovers every record boundary in parallel; the offsets are merged,
// sorted, and sealed with an end-of-buffer sentinel. Phase 2 counts each
// record's G/C/A/T/N symbols under a pool bounded to the same worker
// count and emits a fixed-layout text report per record.
//
// # Basic Usage
//
// Scanning a file:
//
//	src, err := fastatally.Open("genome.fa")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	out, err := os.Create("out.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer out.Close()
//
//	stats, err := fastatally.Scan(ctx, src, fastatally.NewReportWriter(out),
//	    fastatally.WithWorkers(runtime.NumCPU()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("records: %d\n", stats.Records)
//
// Report order in the output matches task completion, not record order in
// the file. Callers that need file order must buffer and reorder outside
// this package.
//
// # Package Structure
//
// The implementation is organized as follows:
//
//   - Public API: scanner.go (Scan, Stats), source.go (Open, OpenFile, OpenBytes),
//     sink.go (ReportSink, NewReportWriter)
//   - Configuration: options.go (Option, With* functions)
//   - Boundary discovery: boundary.go, internal/chunk/ (worker partitioning)
//   - Record handling: record.go (description extraction), tally.go (counting, rendering)
//   - Platform: advise_*.go (OS-specific read-ahead hints)
package fastatally
