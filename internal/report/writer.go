package report

import (
	"io"

	"github.com/nao1215/sfac/internal/model"
)

// Writer defines the interface for run output.
// Implementations render a finished run in various formats.
type Writer interface {
	// Write outputs the run to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(run *model.Run) (int, error)
}

// MultiWriter writes to multiple Writers in order.
// This is useful for printing a summary and saving it at the same time.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the run to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(run *model.Run) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(run)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
