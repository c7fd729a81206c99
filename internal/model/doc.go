// Package model defines the data shared by every stage of a run.
//
// The main types are:
//   - ProbeResult: the outcome of checking one candidate subdomain
//   - Summary: counts derived from a set of results
//   - Run: everything one invocation discovered, checked and wrote
//
// IsValidSubdomain is the single validity rule; the checker, the reports
// and the summary all call it so that they never disagree about which
// candidates count.
package model
