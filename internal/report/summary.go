package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/nao1215/sfac/internal/model"
)

// SummaryWriter prints the end-of-run summary for terminal display.
// Counts are aligned in a single column and accessible subdomains are
// listed below them. Colors follow fatih/color's terminal detection
// unless WithColor overrides it.
type SummaryWriter struct {
	baseWriter

	// listAccessible controls whether accessible subdomains are listed.
	listAccessible bool

	title *color.Color
	good  *color.Color
	bad   *color.Color
	muted *color.Color
}

// SummaryWriterOption configures a SummaryWriter.
type SummaryWriterOption func(*SummaryWriter)

// WithColor forces colored output on or off.
func WithColor(enabled bool) SummaryWriterOption {
	return func(w *SummaryWriter) {
		for _, c := range []*color.Color{w.title, w.good, w.bad, w.muted} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// WithAccessibleList enables or disables the list of accessible subdomains.
func WithAccessibleList(show bool) SummaryWriterOption {
	return func(w *SummaryWriter) {
		w.listAccessible = show
	}
}

// NewSummaryWriter creates a SummaryWriter that outputs to the given writer.
func NewSummaryWriter(output io.Writer, opts ...SummaryWriterOption) *SummaryWriter {
	w := &SummaryWriter{
		baseWriter:     newBaseWriter(output),
		listAccessible: true,
		title:          color.New(color.Bold),
		good:           color.New(color.FgGreen),
		bad:            color.New(color.FgRed),
		muted:          color.New(color.FgHiBlack),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the summary of run.
func (w *SummaryWriter) Write(run *model.Run) (int, error) {
	var sb strings.Builder

	w.writeCounts(&sb, run)
	w.writeSnapshots(&sb, run)
	w.writeAccessible(&sb, run)
	w.writeError(&sb, run)

	return io.WriteString(w.output, sb.String())
}

// writeCounts writes the aligned count lines.
func (w *SummaryWriter) writeCounts(sb *strings.Builder, run *model.Run) {
	s := run.Summary

	sb.WriteString("\n")
	sb.WriteString(w.title.Sprint("Summary"))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 40))
	sb.WriteString("\n")

	line := func(label string, value string) {
		fmt.Fprintf(sb, "  %-13s %s\n", label+":", value)
	}
	line("Discovered", fmt.Sprint(s.Discovered))
	line("Valid", fmt.Sprint(s.Valid))
	line("Invalid", w.nonZero(w.muted, s.Invalid))
	line("Accessible", w.nonZero(w.good, s.Accessible))
	line("Responding", fmt.Sprint(s.Responding))
	line("Unreachable", w.nonZero(w.bad, s.Unreachable))

	if run.ReportPath != "" {
		line("Reported", fmt.Sprintf("%d rows -> %s", s.Reported, run.ReportPath))
	}
	line("Elapsed", run.Elapsed().Round(time.Millisecond).String())
}

// writeSnapshots writes the screenshot counts when screenshots were taken.
func (w *SummaryWriter) writeSnapshots(sb *strings.Builder, run *model.Run) {
	if len(run.Snapshots) == 0 && run.SnapshotFailures == 0 {
		return
	}
	fmt.Fprintf(sb, "  %-13s %d saved", "Snapshots:", len(run.Snapshots))
	if run.SnapshotFailures > 0 {
		sb.WriteString(", ")
		sb.WriteString(w.bad.Sprintf("%d failed", run.SnapshotFailures))
	}
	sb.WriteString("\n")
}

// writeAccessible lists subdomains that answered 200.
func (w *SummaryWriter) writeAccessible(sb *strings.Builder, run *model.Run) {
	if !w.listAccessible {
		return
	}
	accessible := model.AccessibleResults(run.Results)
	if len(accessible) == 0 {
		return
	}

	sb.WriteString("\n")
	sb.WriteString(w.title.Sprint("Accessible subdomains"))
	sb.WriteString("\n")
	for _, r := range accessible {
		sb.WriteString("  ")
		sb.WriteString(w.good.Sprint("[+]"))
		sb.WriteString(" ")
		sb.WriteString(r.Subdomain)
		sb.WriteString("\n")
	}
}

// writeError writes the fatal error, if the run stopped early.
func (w *SummaryWriter) writeError(sb *strings.Builder, run *model.Run) {
	if run.ErrorMessage == "" {
		return
	}
	sb.WriteString("\n")
	sb.WriteString(w.bad.Sprint("Error: "))
	sb.WriteString(run.ErrorMessage)
	sb.WriteString("\n")
}

// nonZero colors n with c unless it is zero.
func (w *SummaryWriter) nonZero(c *color.Color, n int) string {
	if n == 0 {
		return "0"
	}
	return c.Sprint(n)
}
