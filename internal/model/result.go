package model

import "strconv"

// Outcome classifies how a single probe ended.
type Outcome int

const (
	// OutcomeOK means an HTTP response was received; StatusCode holds its code.
	OutcomeOK Outcome = iota
	// OutcomeTimedOut means the request hit its deadline.
	OutcomeTimedOut
	// OutcomeConnectionError covers refused or reset connections, DNS
	// failures and any other transport error.
	OutcomeConnectionError
	// OutcomeInvalid means the candidate failed validation and was never probed.
	OutcomeInvalid
)

// Status strings written to reports.
const (
	// StatusInvalid is reported for candidates that failed validation.
	StatusInvalid = "Invalid"
	// StatusNotAvailable is reported when the probe itself failed.
	StatusNotAvailable = "N/A"
	// AccessibleYes and AccessibleNo render the Accessible column.
	AccessibleYes = "Yes"
	AccessibleNo  = "No"

	unknownStr = "unknown"
)

// String returns a short name for the outcome, used in logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeTimedOut:
		return "timeout"
	case OutcomeConnectionError:
		return "connection_error"
	case OutcomeInvalid:
		return "invalid"
	default:
		return unknownStr
	}
}

// MarshalText renders the outcome by name in JSON output.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// ProbeResult is the immutable outcome of checking one candidate.
type ProbeResult struct {
	// Subdomain is the candidate exactly as it was probed.
	Subdomain string `json:"subdomain"`
	// Outcome tells whether a response was received and why not.
	Outcome Outcome `json:"outcome"`
	// StatusCode is the HTTP status; zero unless Outcome is OutcomeOK.
	StatusCode int `json:"statusCode,omitempty"`
}

// NewOKResult returns a result for a received HTTP response.
func NewOKResult(subdomain string, statusCode int) ProbeResult {
	return ProbeResult{Subdomain: subdomain, Outcome: OutcomeOK, StatusCode: statusCode}
}

// NewFailedResult returns a result for a candidate that produced no response.
func NewFailedResult(subdomain string, outcome Outcome) ProbeResult {
	return ProbeResult{Subdomain: subdomain, Outcome: outcome}
}

// Status returns the value of the "Status Code" column:
// the numeric code, "N/A" for probe failures, or "Invalid".
func (r ProbeResult) Status() string {
	switch r.Outcome {
	case OutcomeOK:
		return strconv.Itoa(r.StatusCode)
	case OutcomeInvalid:
		return StatusInvalid
	default:
		return StatusNotAvailable
	}
}

// Accessible reports whether the subdomain answered with exactly 200.
func (r ProbeResult) Accessible() bool {
	return r.Outcome == OutcomeOK && r.StatusCode == 200
}

// AccessibleText renders Accessible as "Yes" or "No".
func (r ProbeResult) AccessibleText() string {
	if r.Accessible() {
		return AccessibleYes
	}
	return AccessibleNo
}

// Failed reports whether the probe was attempted but produced no response.
func (r ProbeResult) Failed() bool {
	return r.Outcome == OutcomeTimedOut || r.Outcome == OutcomeConnectionError
}
