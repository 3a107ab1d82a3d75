package fastatally

import (
	"fmt"
	"math"
	"os"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"
	tallyerrors "github.com/seqbyte/fastatally/errors"
)

// Source is a read-only, randomly-indexable view of a whole FASTA file.
//
// Thread Safety:
// - Bytes, Len, and Checksum are safe for concurrent use
// - Close is NOT safe to call concurrently with readers
// - Close must only be called after all readers have completed
// - After Close returns, no methods may be called on the Source
type Source struct {
	// Memory map (no file handle needed after mmap)
	mmap mmap.MMap
	data []byte

	closed atomic.Bool // Atomic for lock-free close check
}

// Open opens a FASTA file and memory-maps it for scanning.
// It opens the file, memory-maps it, and closes the file descriptor.
func Open(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fasta file: %w", err)
	}
	defer file.Close()
	return OpenFile(file)
}

// OpenFile creates a Source by memory-mapping the given file.
// The caller is responsible for closing f. Per POSIX mmap(2), f may be
// closed immediately after OpenFile returns.
//
// Empty files cannot be mapped, so a zero-length file yields a Source
// over a nil buffer, which scans as zero records.
func OpenFile(f *os.File) (*Source, error) {
	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat fasta file: %w", err)
	}
	size := stat.Size()

	if size == 0 {
		return &Source{}, nil
	}
	if size > math.MaxInt {
		return nil, tallyerrors.ErrFileTooLarge
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap fasta file: %w", err)
	}

	// Read-ahead hints for the sequential boundary pass. Best-effort.
	adviseSequential(mm)

	return &Source{
		mmap: mm,
		data: []byte(mm),
	}, nil
}

// OpenBytes creates a Source from an in-memory byte slice.
// No file is opened or memory-mapped; Close is a no-op.
// The caller must ensure data is not modified while the Source is in use.
func OpenBytes(data []byte) *Source {
	return &Source{data: data}
}

// Len returns the buffer length in bytes.
func (s *Source) Len() int { return len(s.data) }

// Bytes returns the underlying buffer. The slice is backed by the memory
// map when the Source was opened from a file; callers must not mutate it
// and must not retain it past Close.
func (s *Source) Bytes() []byte { return s.data }

// Checksum returns the xxHash64 digest of the entire buffer. Two runs
// over the same input see the same checksum, so it doubles as an input
// identity stamp in run summaries.
func (s *Source) Checksum() uint64 { return xxhash.Sum64(s.data) }

// Close unmaps the buffer and releases resources.
func (s *Source) Close() error {
	if s.closed.Swap(true) {
		return nil // Already closed
	}

	if s.mmap != nil {
		return s.mmap.Unmap()
	}
	return nil
}
