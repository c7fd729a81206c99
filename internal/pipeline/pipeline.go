package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/sfac/internal/model"
)

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, each receiving the run as left by the
// previous steps.
type Step interface {
	// Do executes the pipeline step.
	// It receives the context for cancellation, and the run to extend.
	// Returns an error if the step fails critically; non-critical errors
	// should be recorded in the run and return nil.
	Do(ctx context.Context, run *model.Run) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
// It maintains a list of steps and executes them in order.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// continueOnError determines whether to continue executing steps
	// after one fails. If false, the pipeline stops on first error.
	continueOnError bool
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError configures the pipeline to continue execution
// even when a step fails. Failed steps are logged and the first error
// is recorded in the run, but subsequent steps still execute.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps:           make([]Step, 0),
		continueOnError: false,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps in sequence.
// Cancellation is checked before each step; steps handle their own
// timeouts while running.
//
// Returns the first error encountered if continueOnError is false,
// or nil if all steps complete (errors are recorded in run).
func (p *Pipeline) Execute(ctx context.Context, run *model.Run) error {
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", err,
			)
			p.recordError(run, err)
			return err
		}

		p.logger.Info("executing step", "step", step.Name())

		if err := step.Do(ctx, run); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"error", err,
			)
			p.recordError(run, err)

			if !p.continueOnError {
				return err
			}
		} else {
			p.logger.Debug("step completed", "step", step.Name())
		}

		run.PerformedSteps = append(run.PerformedSteps, step.Name())
	}

	return nil
}

// recordError keeps the first fatal error of the run.
func (p *Pipeline) recordError(run *model.Run, err error) {
	if run.Error != nil {
		return
	}
	run.Error = err
	run.ErrorMessage = err.Error()
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
