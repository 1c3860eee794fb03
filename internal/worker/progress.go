package worker

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Progress counts completed jobs and reports at most once per interval
type Progress struct {
	out       io.Writer
	label     string
	total     int64
	done      atomic.Int64
	sometimes rate.Sometimes
	mu        sync.Mutex
}

// NewProgress creates a reporter writing to out; a nil out disables reporting
func NewProgress(out io.Writer, label string, total int, interval time.Duration) *Progress {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Progress{
		out:       out,
		label:     label,
		total:     int64(total),
		sometimes: rate.Sometimes{First: 1, Interval: interval},
	}
}

// Tick records one completed job and maybe prints a progress line
func (p *Progress) Tick() {
	done := p.done.Add(1)
	if p.out == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.sometimes.Do(func() {
		fmt.Fprintf(p.out, "  %s: %d/%d\n", p.label, done, p.total)
	})
}

// Done returns the number of completed jobs
func (p *Progress) Done() int {
	return int(p.done.Load())
}

// Finish prints the final count
func (p *Progress) Finish() {
	if p.out == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "  %s: %d/%d done\n", p.label, p.done.Load(), p.total)
}
