// Package pipeline runs a check as a sequence of steps over a shared
// model.Run.
//
// A typical run collects candidates (from enumerators or a list file),
// probes them with a Checker, writes the CSV report, captures screenshots
// of accessible subdomains and exports summaries. Each stage is a Step
// that reads and extends the run; the Pipeline executes them in order,
// logs their progress and stops at the first fatal error.
//
// Checker is the bounded-concurrency core: it probes every candidate with
// at most a fixed number of requests in flight and reports progress to an
// Observer from a single goroutine.
package pipeline
