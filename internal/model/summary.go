package model

// Summary holds the end-of-run counts shown to the user.
type Summary struct {
	// Discovered is the number of candidates that entered the checker.
	Discovered int `json:"discovered"`

	// Valid is the number of candidates that passed validation.
	Valid int `json:"valid"`

	// Invalid is the number of candidates rejected by validation.
	Invalid int `json:"invalid"`

	// Accessible is the number of subdomains that answered 200.
	Accessible int `json:"accessible"`

	// Responding is the number of valid subdomains that answered with any
	// status, 200 included.
	Responding int `json:"responding"`

	// Unreachable is the number of probes that timed out or failed to connect.
	Unreachable int `json:"unreachable"`

	// Reported is the number of rows written to the CSV report.
	Reported int `json:"reported"`
}

// NewSummary counts results. Reported equals Valid because the report keeps
// exactly the results whose subdomain passes IsValidSubdomain.
func NewSummary(results []ProbeResult) Summary {
	s := Summary{Discovered: len(results)}
	for _, r := range results {
		if !IsValidSubdomain(r.Subdomain) {
			s.Invalid++
			continue
		}
		s.Valid++
		switch {
		case r.Accessible():
			s.Accessible++
			s.Responding++
		case r.Outcome == OutcomeOK:
			s.Responding++
		case r.Failed():
			s.Unreachable++
		}
	}
	s.Reported = s.Valid
	return s
}

// AccessibleResults returns the results whose subdomain answered 200,
// in their original order.
func AccessibleResults(results []ProbeResult) []ProbeResult {
	accessible := make([]ProbeResult, 0)
	for _, r := range results {
		if r.Accessible() {
			accessible = append(accessible, r)
		}
	}
	return accessible
}
