package model

import (
	"regexp"
	"strings"
)

const (
	// maxLabelLength is the longest label allowed between two dots.
	maxLabelLength = 63
	// maxSubdomainLength is the longest hostname accepted, excluding a root dot.
	maxSubdomainLength = 253
)

// labelPattern matches a single DNS label: 1-63 letters, digits or hyphens,
// never starting or ending with a hyphen.
var labelPattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?$`)

// IsValidSubdomain reports whether candidate is a syntactically plausible
// subdomain: two or more dot-separated labels, each matching labelPattern.
//
// Enumeration tools emit banner lines, blank lines and partial matches.
// This check is the only gate between that noise and the network, and it is
// applied again before reporting, so it must stay pure and total.
func IsValidSubdomain(candidate string) bool {
	if candidate == "" || len(candidate) > maxSubdomainLength {
		return false
	}

	labels := strings.Split(candidate, ".")
	if len(labels) < 2 {
		return false
	}

	for _, label := range labels {
		if len(label) == 0 || len(label) > maxLabelLength {
			return false
		}
		if !labelPattern.MatchString(label) {
			return false
		}
	}
	return true
}

// NormalizeCandidate trims surrounding whitespace and a trailing root dot
// from a raw line. It does not validate; blank input stays blank so that it
// surfaces as an Invalid result rather than disappearing.
func NormalizeCandidate(raw string) string {
	s := strings.TrimSpace(raw)
	return strings.TrimSuffix(s, ".")
}
