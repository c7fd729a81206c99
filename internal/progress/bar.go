package progress

import (
	"fmt"
	"io"

	"github.com/nao1215/sfac/internal/model"
	"github.com/schollz/progressbar/v3"
)

// defaultWidth is the width of the bar itself, in characters.
const defaultWidth = 30

// Bar draws a progress bar that counts finished probes and accessible hosts.
// It is not safe for concurrent use; the checker calls it from a single
// goroutine.
type Bar struct {
	output      io.Writer
	description string
	width       int
	bar         *progressbar.ProgressBar
	accessible  int
}

// BarOption configures a Bar.
type BarOption func(*Bar)

// WithWidth sets the bar width in characters. Non-positive values are ignored.
func WithWidth(width int) BarOption {
	return func(b *Bar) {
		if width > 0 {
			b.width = width
		}
	}
}

// NewBar creates a Bar that renders to w with the given description.
// A nil w discards all output.
func NewBar(w io.Writer, description string, opts ...BarOption) *Bar {
	if w == nil {
		w = io.Discard
	}
	b := &Bar{
		output:      w,
		description: description,
		width:       defaultWidth,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Start creates the underlying bar for total probes. Nothing is drawn
// for an empty run.
func (b *Bar) Start(total int) {
	b.accessible = 0
	b.bar = nil
	if total <= 0 {
		return
	}
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.output),
		progressbar.OptionSetDescription(b.description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(b.width),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(b.output)
		}),
	)
}

// Observe advances the bar to done and tallies accessible results.
func (b *Bar) Observe(done int, r model.ProbeResult) {
	if b.bar == nil {
		return
	}
	if r.Accessible() {
		b.accessible++
		b.bar.Describe(fmt.Sprintf("%s (%d accessible)", b.description, b.accessible))
	}
	_ = b.bar.Set(done)
}

// Finish completes the bar. It is safe to call more than once.
func (b *Bar) Finish() {
	if b.bar == nil || b.bar.IsFinished() {
		return
	}
	_ = b.bar.Finish()
}

// Accessible returns how many observed results were accessible.
func (b *Bar) Accessible() int {
	return b.accessible
}
