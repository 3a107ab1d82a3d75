// Fastatally scans a FASTA file through a memory map and writes one
// nucleotide frequency report per record.
//
// Usage:
//
//	fastatally [flags] <path-to-fasta-file>
//
// Flags:
//
//	-workers   Number of parallel workers (default: NumCPU)
//	-o         Output file path (default: out.txt)
//	-quiet     Suppress progress and summary output
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/seqbyte/fastatally"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}

func run(ctx context.Context, argv []string, stderr *os.File) int {
	fs := flag.NewFlagSet("fastatally", flag.ContinueOnError)
	fs.SetOutput(stderr)
	workersFlag := fs.Int("workers", runtime.NumCPU(), "number of parallel workers")
	outFlag := fs.String("o", "out.txt", "output file path")
	quietFlag := fs.Bool("quiet", false, "suppress progress and summary output")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fastatally [flags] <path-to-fasta-file>\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	path := fs.Arg(0)

	src, err := fastatally.Open(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer src.Close()

	out, err := os.Create(*outFlag)
	if err != nil {
		fmt.Fprintf(stderr, "create output file: %v\n", err)
		return 1
	}
	defer out.Close()

	if !*quietFlag {
		fmt.Fprintln(stderr, "Counting nucleotides...")
	}
	bar := newProgress(stderr, *quietFlag)

	start := time.Now()
	stats, err := fastatally.Scan(ctx, src, fastatally.NewReportWriter(out),
		fastatally.WithWorkers(*workersFlag),
		fastatally.WithProgress(func(int) { bar.increment() }),
	)
	bar.finish()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, "interrupted")
		} else {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	elapsed := time.Since(start)

	if err := out.Close(); err != nil {
		fmt.Fprintf(stderr, "close output file: %v\n", err)
		return 1
	}

	if !*quietFlag {
		c := stats.Combined
		fmt.Fprintf(stderr, "Records:  %d\n", stats.Records)
		fmt.Fprintf(stderr, "Bytes:    %d\n", stats.BufferLen)
		fmt.Fprintf(stderr, "Totals:   G=%d C=%d A=%d T=%d N=%d (%d counted)\n",
			c.G, c.C, c.A, c.T, c.N, c.Total)
		fmt.Fprintf(stderr, "Checksum: %016x\n", src.Checksum())
		fmt.Fprintf(stderr, "Elapsed:  %s (%d workers)\n", elapsed.Round(time.Millisecond), *workersFlag)
		fmt.Fprintf(stderr, "Output is stored in %s\n", *outFlag)
	}
	return 0
}
