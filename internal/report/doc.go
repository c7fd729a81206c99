// Package report turns probe results into files and console output.
//
// WriteCSV produces the persisted report: one row per valid subdomain, in
// input order, committed atomically. The Writer implementations render a
// whole run for people and tools:
//   - SummaryWriter: colored end-of-run summary for the terminal
//   - MarkdownWriter: shareable Markdown summary with a mermaid pie chart
//   - JSONWriter: the complete run for tool integration
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed with MultiWriter.
package report
