package config

import "errors"

// Configuration errors returned by Validate.
var (
	// ErrNoInput is returned when neither a domain nor a subdomain list is given.
	ErrNoInput = errors.New("no input provided (specify a domain or a subdomain list file)")

	// ErrConflictingInputs is returned when both domains and a list file are given.
	ErrConflictingInputs = errors.New("domain and subdomain list file are mutually exclusive")

	// ErrNoOutput is returned when the report path is empty.
	ErrNoOutput = errors.New("output file path must not be empty")

	// ErrInvalidTimeout is returned when a timeout is zero or negative.
	ErrInvalidTimeout = errors.New("timeout must be positive")

	// ErrConflictingProxies is returned when --tor and --proxy are both set.
	ErrConflictingProxies = errors.New("--tor and --proxy are mutually exclusive")

	// ErrNoSources is returned when domains are given but no enumerator is enabled.
	ErrNoSources = errors.New("at least one enumeration source is required")
)
