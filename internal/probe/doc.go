// Package probe checks whether a subdomain answers over HTTP.
//
// A probe is a single GET to http://<subdomain> bounded by a timeout. It
// never retries and never returns an error: every way a probe can end is
// folded into a model.ProbeResult, so one slow or broken host cannot affect
// the others in a batch.
package probe
