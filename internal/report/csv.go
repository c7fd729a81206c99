package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/nao1215/sfac/internal/model"
)

// ErrOutputDirNotFound is returned when the report's parent directory does
// not exist. WriteCSV never creates it.
var ErrOutputDirNotFound = errors.New("output directory does not exist")

// csvRow is one line of the persisted report.
// The csv tags define the header, in column order.
type csvRow struct {
	Subdomain  string `csv:"Subdomain"`
	StatusCode string `csv:"Status Code"`
	Accessible string `csv:"Accessible"`
}

// rows converts results into report rows, dropping every result whose
// subdomain fails validation. Input order is preserved.
func rows(results []model.ProbeResult) []*csvRow {
	out := make([]*csvRow, 0, len(results))
	for _, r := range results {
		if !model.IsValidSubdomain(r.Subdomain) {
			continue
		}
		out = append(out, &csvRow{
			Subdomain:  r.Subdomain,
			StatusCode: r.Status(),
			Accessible: r.AccessibleText(),
		})
	}
	return out
}

// WriteCSV writes the valid subset of results to path as CSV with the header
// "Subdomain,Status Code,Accessible". Lines end with CRLF.
//
// The file is written to a temporary sibling and renamed into place, so
// path either holds the complete report or is left untouched.
func WriteCSV(results []model.ProbeResult, path string) error {
	dir := filepath.Dir(path)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputDirNotFound, dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary report: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	w := csv.NewWriter(tmp)
	w.UseCRLF = true
	out := gocsv.NewSafeCSVWriter(w)
	if err := gocsv.MarshalCSV(rows(results), out); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	out.Flush()
	if err := out.Error(); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close report: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil { //nolint:gosec // reports are meant to be shared
		return fmt.Errorf("failed to set report permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to commit report: %w", err)
	}
	committed = true

	return nil
}
