package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nao1215/sfac/internal/enumerator"
	"github.com/nao1215/sfac/internal/model"
	"github.com/nao1215/sfac/internal/report"
	"github.com/nao1215/sfac/internal/screenshot"
)

// ErrNoDomainsEnumerated is returned when enumeration failed for every domain.
var ErrNoDomainsEnumerated = errors.New("enumeration failed for every domain")

// StepOption configures the logger of a step.
type StepOption func(*stepBase)

// WithStepLogger sets a custom logger for a step.
func WithStepLogger(logger *slog.Logger) StepOption {
	return func(s *stepBase) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// stepBase holds what every step shares.
type stepBase struct {
	logger *slog.Logger
}

func newStepBase(opts []StepOption) stepBase {
	s := stepBase{logger: slog.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// EnumerateStep discovers candidates for every domain of the run.
// Domains are processed one after another; names already found for an
// earlier domain are not added twice.
type EnumerateStep struct {
	stepBase
	enumerator enumerator.Enumerator
}

// NewEnumerateStep creates a step that fills run.Candidates from e.
func NewEnumerateStep(e enumerator.Enumerator, opts ...StepOption) *EnumerateStep {
	return &EnumerateStep{stepBase: newStepBase(opts), enumerator: e}
}

// Name returns the step name.
func (s *EnumerateStep) Name() string {
	return "enumerate"
}

// Do executes the enumeration step. A domain whose enumeration fails is
// logged and skipped; the step fails only when every domain failed.
func (s *EnumerateStep) Do(ctx context.Context, run *model.Run) error {
	seen := make(map[string]struct{}, len(run.Candidates))
	for _, c := range run.Candidates {
		seen[c] = struct{}{}
	}

	var errs []error
	for _, domain := range run.Domains {
		names, err := s.enumerator.Enumerate(ctx, domain)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			s.logger.Warn("enumeration failed",
				"domain", domain,
				"source", s.enumerator.Name(),
				"error", err,
			)
			errs = append(errs, fmt.Errorf("%s: %w", domain, err))
			continue
		}

		added := 0
		for _, name := range names {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			run.Candidates = append(run.Candidates, name)
			added++
		}
		s.logger.Info("enumeration finished",
			"domain", domain,
			"found", len(names),
			"added", added,
		)
	}

	if len(run.Domains) > 0 && len(errs) == len(run.Domains) {
		return fmt.Errorf("%w: %w", ErrNoDomainsEnumerated, errors.Join(errs...))
	}
	return nil
}

// ListStep reads candidates from the run's input file.
type ListStep struct {
	stepBase
}

// NewListStep creates a step that fills run.Candidates from run.InputFile.
func NewListStep(opts ...StepOption) *ListStep {
	return &ListStep{stepBase: newStepBase(opts)}
}

// Name returns the step name.
func (s *ListStep) Name() string {
	return "list"
}

// Do executes the list step. Lines are kept in file order, duplicates and
// malformed entries included.
func (s *ListStep) Do(_ context.Context, run *model.Run) error {
	lines, err := enumerator.ReadList(run.InputFile)
	if err != nil {
		return err
	}
	for _, line := range lines {
		run.Candidates = append(run.Candidates, model.NormalizeCandidate(line))
	}
	s.logger.Info("subdomain list loaded",
		"file", run.InputFile,
		"candidates", len(lines),
	)
	return nil
}

// CheckStep probes every candidate of the run.
type CheckStep struct {
	stepBase
	checker *Checker
}

// NewCheckStep creates a step that fills run.Results and run.Summary.
func NewCheckStep(checker *Checker, opts ...StepOption) *CheckStep {
	return &CheckStep{stepBase: newStepBase(opts), checker: checker}
}

// Name returns the step name.
func (s *CheckStep) Name() string {
	return "check"
}

// Do executes the check step. Cancellation aborts the step without
// touching run.Results.
func (s *CheckStep) Do(ctx context.Context, run *model.Run) error {
	results, err := s.checker.CheckAll(ctx, run.Candidates)
	if err != nil {
		return err
	}
	run.Results = results
	run.Summary = model.NewSummary(results)
	s.logger.Info("check finished",
		"valid", run.Summary.Valid,
		"accessible", run.Summary.Accessible,
		"unreachable", run.Summary.Unreachable,
	)
	return nil
}

// ReportStep writes the CSV report.
type ReportStep struct {
	stepBase
	path string
}

// NewReportStep creates a step that writes the CSV report to path.
func NewReportStep(path string, opts ...StepOption) *ReportStep {
	return &ReportStep{stepBase: newStepBase(opts), path: path}
}

// Name returns the step name.
func (s *ReportStep) Name() string {
	return "report"
}

// Do executes the report step. Any failure is fatal.
func (s *ReportStep) Do(_ context.Context, run *model.Run) error {
	if err := report.WriteCSV(run.Results, s.path); err != nil {
		return fmt.Errorf("failed to write report %s: %w", s.path, err)
	}
	run.ReportPath = s.path
	s.logger.Info("report written", "path", s.path, "rows", run.Summary.Reported)
	return nil
}

// SnapshotStep captures a screenshot of every accessible subdomain.
// Captures run one at a time after the report has been written.
type SnapshotStep struct {
	stepBase
	capturer screenshot.Capturer
	dir      string
}

// NewSnapshotStep creates a step that saves screenshots into dir.
func NewSnapshotStep(capturer screenshot.Capturer, dir string, opts ...StepOption) *SnapshotStep {
	return &SnapshotStep{stepBase: newStepBase(opts), capturer: capturer, dir: dir}
}

// Name returns the step name.
func (s *SnapshotStep) Name() string {
	return "snapshot"
}

// Do executes the snapshot step. Failures are logged and counted in
// run.SnapshotFailures but never returned. A missing browser skips the
// remaining captures.
func (s *SnapshotStep) Do(ctx context.Context, run *model.Run) error {
	accessible := model.AccessibleResults(run.Results)
	for i, r := range accessible {
		if err := ctx.Err(); err != nil {
			s.logger.Warn("snapshots interrupted", "remaining", len(accessible)-i, "reason", err)
			return nil
		}

		path, err := s.capturer.Capture(ctx, r.Subdomain, s.dir)
		if errors.Is(err, screenshot.ErrBrowserNotFound) {
			s.logger.Warn("no browser available, skipping snapshots", "error", err)
			run.SnapshotFailures += len(accessible) - i
			return nil
		}
		if err != nil {
			s.logger.Warn("snapshot failed", "subdomain", r.Subdomain, "error", err)
			run.SnapshotFailures++
			continue
		}
		run.Snapshots = append(run.Snapshots, path)
		s.logger.Debug("snapshot saved", "subdomain", r.Subdomain, "path", path)
	}
	return nil
}

// ExportStep renders the run with a report.Writer into a file.
type ExportStep struct {
	stepBase
	name      string
	path      string
	newWriter func(io.Writer) report.Writer
}

// NewExportStep creates a step named name that writes the run to path
// using the writer returned by newWriter.
func NewExportStep(name, path string, newWriter func(io.Writer) report.Writer, opts ...StepOption) *ExportStep {
	return &ExportStep{
		stepBase:  newStepBase(opts),
		name:      name,
		path:      path,
		newWriter: newWriter,
	}
}

// NewMarkdownStep creates a step that writes a Markdown summary to path.
func NewMarkdownStep(path string, opts ...StepOption) *ExportStep {
	return NewExportStep("markdown", path, func(w io.Writer) report.Writer {
		return report.NewMarkdownWriter(w)
	}, opts...)
}

// NewJSONStep creates a step that writes the run as JSON to path.
func NewJSONStep(path, version string, opts ...StepOption) *ExportStep {
	return NewExportStep("json", path, func(w io.Writer) report.Writer {
		return report.NewJSONWriter(w, report.WithPrettyPrint(), report.WithVersion(version))
	}, opts...)
}

// Name returns the step name.
func (s *ExportStep) Name() string {
	return s.name
}

// Do executes the export step.
func (s *ExportStep) Do(_ context.Context, run *model.Run) (err error) {
	f, err := os.Create(s.path) //nolint:gosec // user-provided output path is intentional
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", s.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", s.path, cerr)
		}
	}()

	if _, err := s.newWriter(f).Write(run); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	s.logger.Info("summary exported", "format", s.name, "path", s.path)
	return nil
}
