package fastatally

// Option is a functional option for configuring a scan.
type Option func(*scanConfig)

type scanConfig struct {
	workers  int
	progress func(recordsDone int)
}

func defaultScanConfig() *scanConfig {
	return &scanConfig{
		workers: 1, // Single-threaded by default; use WithWorkers(n) to parallelize
	}
}

// WithWorkers sets the number of parallel workers used by both the
// boundary-discovery pass and the counting pass. Scan rejects values
// below 1.
func WithWorkers(n int) Option {
	return func(c *scanConfig) {
		c.workers = n
	}
}

// WithProgress registers a callback invoked after each record's report
// has been accepted by the sink, with the number of records completed so
// far. Calls are serialized, so the callback needs no locking of its
// own. A nil callback disables progress reporting.
func WithProgress(fn func(recordsDone int)) Option {
	return func(c *scanConfig) {
		c.progress = fn
	}
}
