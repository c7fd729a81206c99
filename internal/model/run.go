package model

import "time"

// Run accumulates everything a single invocation of the checker produces.
// Pipeline steps read and extend it in order.
type Run struct {
	// Domains are the targets handed to the enumerators, if any.
	Domains []string `json:"domains,omitempty"`

	// InputFile is the subdomain list used instead of enumeration.
	InputFile string `json:"inputFile,omitempty"`

	// Candidates are the raw strings to probe, in probing order.
	Candidates []string `json:"candidates"`

	// Results holds one probe result per candidate, index-aligned.
	Results []ProbeResult `json:"results"`

	// ReportPath is where the CSV report was committed.
	ReportPath string `json:"reportPath,omitempty"`

	// Snapshots lists the screenshot files written.
	Snapshots []string `json:"snapshots,omitempty"`

	// SnapshotFailures counts accessible subdomains whose capture failed.
	SnapshotFailures int `json:"snapshotFailures,omitempty"`

	// Summary is filled once results are available.
	Summary Summary `json:"summary"`

	// StartedAt and FinishedAt bracket the run.
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt,omitzero"`

	// PerformedSteps lists the names of the steps that ran.
	PerformedSteps []string `json:"performedSteps,omitempty"`

	// Error is the first fatal step error, if any.
	Error error `json:"-"`

	// ErrorMessage is Error rendered for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// NewRun creates an empty run stamped with the current time.
func NewRun() *Run {
	return &Run{
		Candidates: make([]string, 0),
		Results:    make([]ProbeResult, 0),
		StartedAt:  time.Now(),
	}
}

// Elapsed returns how long the run took, or has taken so far.
func (r *Run) Elapsed() time.Duration {
	if r.FinishedAt.IsZero() {
		return time.Since(r.StartedAt)
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
