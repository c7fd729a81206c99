package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/sfac/internal/model"
)

// JSONWriter outputs the complete run in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// version is recorded in the output envelope.
	version string

	// indent enables pretty-printed JSON output.
	indent bool
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables two-space indented output.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
	}
}

// WithVersion records the sfac version in the output.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONReport wraps a run with metadata about the tool that produced it.
type JSONReport struct {
	// Version is the sfac version that generated this report.
	Version string `json:"version,omitempty"`

	// Run is the complete run.
	Run *model.Run `json:"run"`
}

// Write outputs run wrapped in a JSONReport, followed by a newline.
func (w *JSONWriter) Write(run *model.Run) (int, error) {
	v := JSONReport{Version: w.version, Run: run}

	var data []byte
	var err error
	if w.indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}
