package report

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/sfac/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MarkdownWriter outputs a run summary in Markdown format.
// It is meant for sharing results in issues, pull requests and wikis.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs run in Markdown format.
func (w *MarkdownWriter) Write(run *model.Run) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, run)
	w.writeSummary(md, run)
	w.writeAccessible(md, run)
	w.writeUnreachable(md, run)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and run information table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, run *model.Run) {
	md.H1("Subdomain Accessibility Report")
	md.PlainText("")

	rows := [][]string{}
	if len(run.Domains) > 0 {
		rows = append(rows, []string{"Targets", "`" + strings.Join(run.Domains, "`, `") + "`"})
	}
	if run.InputFile != "" {
		rows = append(rows, []string{"Input File", "`" + run.InputFile + "`"})
	}
	rows = append(rows,
		[]string{"Started", run.StartedAt.Format("2006-01-02 15:04:05 MST")},
		[]string{"Elapsed", run.Elapsed().Round(time.Millisecond).String()},
	)
	if run.ReportPath != "" {
		rows = append(rows, []string{"CSV Report", "`" + run.ReportPath + "`"})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeSummary writes the count table and the outcome chart.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, run *model.Run) {
	s := run.Summary

	md.H2("Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Discovered", strconv.Itoa(s.Discovered)},
			{"Valid", strconv.Itoa(s.Valid)},
			{"Invalid", strconv.Itoa(s.Invalid)},
			{"Accessible (200)", strconv.Itoa(s.Accessible)},
			{"Responding", strconv.Itoa(s.Responding)},
			{"Unreachable", strconv.Itoa(s.Unreachable)},
			{"Reported", strconv.Itoa(s.Reported)},
		},
	})
	md.PlainText("")

	if s.Discovered == 0 {
		md.Note("No subdomains were checked.")
		md.PlainText("")
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Probe Outcomes"),
		piechart.WithShowData(true),
	)
	// Responding includes accessible hosts; the chart needs disjoint slices.
	if s.Accessible > 0 {
		chart.LabelAndIntValue("Accessible", uint64(s.Accessible))
	}
	if other := s.Responding - s.Accessible; other > 0 {
		chart.LabelAndIntValue("Other status", uint64(other))
	}
	if s.Unreachable > 0 {
		chart.LabelAndIntValue("Unreachable", uint64(s.Unreachable))
	}
	if s.Invalid > 0 {
		chart.LabelAndIntValue("Invalid", uint64(s.Invalid))
	}
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")

	if run.SnapshotFailures > 0 {
		md.Warningf("%d screenshot(s) could not be captured.", run.SnapshotFailures)
		md.PlainText("")
	}
	if run.ErrorMessage != "" {
		md.Cautionf("The run stopped early: %s", run.ErrorMessage)
		md.PlainText("")
	}
}

// writeAccessible writes the table of subdomains that answered 200.
func (w *MarkdownWriter) writeAccessible(md *markdown.Markdown, run *model.Run) {
	md.H2("Accessible Subdomains")
	md.PlainText("")

	accessible := model.AccessibleResults(run.Results)
	if len(accessible) == 0 {
		md.PlainText("No subdomain answered with 200 OK.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(accessible))
	for _, r := range accessible {
		rows = append(rows, []string{"`" + r.Subdomain + "`", r.Status()})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Subdomain", "Status Code"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(run.Snapshots) > 0 {
		md.H2("Screenshots")
		md.PlainText("")
		md.BulletList(run.Snapshots...)
		md.PlainText("")
	}
}

// writeUnreachable writes the table of valid subdomains that never answered.
func (w *MarkdownWriter) writeUnreachable(md *markdown.Markdown, run *model.Run) {
	rows := [][]string{}
	for _, r := range run.Results {
		if r.Failed() && model.IsValidSubdomain(r.Subdomain) {
			rows = append(rows, []string{"`" + r.Subdomain + "`", outcomeLabel(r.Outcome)})
		}
	}
	if len(rows) == 0 {
		return
	}

	md.H2("Unreachable Subdomains")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Subdomain", "Reason"},
		Rows:   rows,
	})
	md.PlainText("")
}

// outcomeLabel renders an outcome for readers, e.g. "Connection Error".
// A Caser is stateful, so each call gets its own.
func outcomeLabel(o model.Outcome) string {
	return cases.Title(language.English).String(strings.ReplaceAll(o.String(), "_", " "))
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by [sfac](https://github.com/nao1215/sfac)*")
}
