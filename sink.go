package fastatally

import (
	"io"
	"sync"

	tallyerrors "github.com/seqbyte/fastatally/errors"
)

// ReportSink accepts fully rendered report blocks. Implementations must
// serialize WriteReport calls so each report's bytes land contiguously in
// the destination; no ordering between reports is promised by the
// scanner, only atomicity of each block.
type ReportSink interface {
	WriteReport(report []byte) error
}

// ReportWriter is a ReportSink that appends reports to an io.Writer
// under a mutex. The zero ordering guarantee of the scanner means the
// destination sees reports in completion order, not file order.
type ReportWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewReportWriter wraps w as a mutually exclusive report sink.
func NewReportWriter(w io.Writer) *ReportWriter {
	return &ReportWriter{w: w}
}

// WriteReport appends one report block to the destination.
func (rw *ReportWriter) WriteReport(report []byte) error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	n, err := rw.w.Write(report)
	if err != nil {
		return err
	}
	if n != len(report) {
		return tallyerrors.ErrShortWrite
	}
	return nil
}
