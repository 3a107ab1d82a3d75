package fastatally

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// testRecord is one input record for rendered test buffers. desc includes
// the leading '>' and must contain neither '\n' nor further '>' bytes;
// seq may contain anything except '>'.
type testRecord struct {
	desc string
	seq  string
}

// renderFasta renders records into a single buffer: each description
// line, then the raw sequence bytes.
func renderFasta(records []testRecord) []byte {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(r.desc)
		b.WriteByte('\n')
		b.WriteString(r.seq)
	}
	return []byte(b.String())
}

// seqAlphabet mixes canonical symbols with bytes the counter must skip.
var seqAlphabet = []byte("GGCCAATTNgcatnu -.0\n")

// randomRecords generates n records with random descriptions and
// newline-terminated sequences drawn from seqAlphabet.
func randomRecords(rng *rand.Rand, n, maxSeqLen int) []testRecord {
	records := make([]testRecord, n)
	for i := range records {
		seq := make([]byte, rng.IntN(maxSeqLen+1))
		for j := range seq {
			seq[j] = seqAlphabet[rng.IntN(len(seqAlphabet))]
		}
		records[i] = testRecord{
			desc: fmt.Sprintf(">record_%d x%04x", i, rng.Uint32N(1<<16)),
			seq:  string(seq) + "\n",
		}
	}
	return records
}

// referenceTally recounts a sequence with a plain loop, independent of
// the scanning pipeline.
func referenceTally(seq string) Tally {
	var t Tally
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G':
			t.G++
		case 'C':
			t.C++
		case 'A':
			t.A++
		case 'T':
			t.T++
		case 'N':
			t.N++
		default:
			continue
		}
		t.Total++
	}
	return t
}

// memorySink collects reports under a mutex for later inspection.
type memorySink struct {
	mu      sync.Mutex
	reports []string
}

func (s *memorySink) WriteReport(report []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, string(report))
	return nil
}

// multiset returns report counts keyed by exact bytes. Report order is
// unspecified, so assertions compare multisets rather than sequences.
func (s *memorySink) multiset() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.reports))
	for _, r := range s.reports {
		out[r]++
	}
	return out
}

func (s *memorySink) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reports)
}

// scanCollect runs Scan over an in-memory buffer and returns the sink
// and stats.
func scanCollect(t *testing.T, buf []byte, workers int) (*memorySink, *Stats) {
	t.Helper()
	sink := &memorySink{}
	stats, err := Scan(context.Background(), OpenBytes(buf), sink, WithWorkers(workers))
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	return sink, stats
}

// expectedReports renders the report each record should produce and
// returns the collection as a multiset. Valid only for records built by
// randomRecords (newline-terminated descriptions, marker-free sequences).
func expectedReports(records []testRecord) map[string]int {
	out := make(map[string]int, len(records))
	for _, r := range records {
		report := referenceTally(r.seq).appendReport(nil, []byte(r.desc))
		out[string(report)]++
	}
	return out
}

// sameMultiset compares two report multisets and reports differences.
func sameMultiset(t *testing.T, got, want map[string]int) {
	t.Helper()
	for report, n := range want {
		if got[report] != n {
			t.Errorf("report seen %d times, want %d:\n%q", got[report], n, report)
		}
	}
	for report, n := range got {
		if _, ok := want[report]; !ok {
			t.Errorf("unexpected report seen %d times:\n%q", n, report)
		}
	}
}
