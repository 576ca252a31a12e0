package grinder

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/term"
)

// Reporter periodically writes how many keys have been processed.
// It only loads the shared counter and never blocks workers.
type Reporter struct {
	w        io.Writer
	cores    int
	counter  *atomic.Uint64
	interval time.Duration
	tty      bool
}

// NewReporter creates a reporter. When w is a terminal the progress line is
// rewritten in place; otherwise every sample is written on its own line.
func NewReporter(w io.Writer, cores int, counter *atomic.Uint64, interval time.Duration) *Reporter {
	r := &Reporter{
		w:        w,
		cores:    cores,
		counter:  counter,
		interval: interval,
	}
	if f, ok := w.(*os.File); ok {
		r.tty = term.IsTerminal(int(f.Fd()))
	}
	return r
}

// Run samples the counter every interval until ctx is done.
func (r *Reporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if r.tty {
				// clear the progress line
				fmt.Fprint(r.w, "\r\033[K")
			}
			return
		case <-ticker.C:
			if r.tty {
				fmt.Fprintf(r.w, "\r\033[K%s", r.Line())
			} else {
				fmt.Fprintln(r.w, r.Line())
			}
		}
	}
}

// Line renders the current progress message.
func (r *Reporter) Line() string {
	return fmt.Sprintf("Grinding using %d cores... (processed %d keys)",
		r.cores, ReduceToSignificantDigit(r.counter.Load()))
}

// ReduceToSignificantDigit keeps only the leading digit of n:
// 45 -> 40, 999 -> 900, 12345 -> 10000.
func ReduceToSignificantDigit(n uint64) uint64 {
	magnitude := uint64(1)
	for n >= 10 {
		n /= 10
		magnitude *= 10
	}
	return n * magnitude
}
