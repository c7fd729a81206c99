package enumerator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrAllSourcesFailed is returned by Multi when no source succeeded.
	ErrAllSourcesFailed = errors.New("all enumeration sources failed")

	// ErrInvalidDomain is returned for targets that are not registrable
	// domain names, such as "co.uk" or "localhost".
	ErrInvalidDomain = errors.New("invalid target domain")

	// ErrUnknownSource is returned when a source name has no implementation.
	ErrUnknownSource = errors.New("unknown enumeration source")
)

// Enumerator discovers subdomains of a domain.
type Enumerator interface {
	// Name identifies the source in logs.
	Name() string
	// Enumerate returns raw names found for domain. Names may be unsorted,
	// duplicated or outside domain; Multi cleans them up.
	Enumerate(ctx context.Context, domain string) ([]string, error)
}

// NormalizeDomain lowercases domain, converts it to its ASCII form and
// checks that it is at or below a registrable domain.
func NormalizeDomain(domain string) (string, error) {
	d := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(domain)), ".")
	ascii, err := idna.Lookup.ToASCII(d)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidDomain, domain, err)
	}
	if _, err := publicsuffix.EffectiveTLDPlusOne(ascii); err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidDomain, domain, err)
	}
	return ascii, nil
}

// normalizeName cleans one raw name. It returns "" for names that cannot
// be converted.
func normalizeName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.TrimPrefix(name, "*.")
	name = strings.TrimSuffix(name, ".")
	if name == "" {
		return ""
	}
	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return ""
	}
	return ascii
}

// InScope reports whether name is domain or one of its subdomains.
func InScope(name, domain string) bool {
	return name == domain || strings.HasSuffix(name, "."+domain)
}

// Multi runs several enumerators concurrently and merges their output.
type Multi struct {
	sources []Enumerator
	logger  *slog.Logger
}

// MultiOption configures Multi.
type MultiOption func(*Multi)

// WithLogger sets the logger for per-source reporting.
func WithLogger(logger *slog.Logger) MultiOption {
	return func(m *Multi) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewMulti returns an Enumerator over sources.
func NewMulti(sources []Enumerator, opts ...MultiOption) *Multi {
	m := &Multi{
		sources: sources,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name implements Enumerator.
func (m *Multi) Name() string {
	names := make([]string, len(m.sources))
	for i, s := range m.sources {
		names[i] = s.Name()
	}
	return strings.Join(names, "+")
}

// Enumerate implements Enumerator. The result is normalized, limited to
// domain and its subdomains, de-duplicated and sorted. A failing source is
// logged and skipped; ErrAllSourcesFailed is returned only if every
// source failed.
func (m *Multi) Enumerate(ctx context.Context, domain string) ([]string, error) {
	target, err := NormalizeDomain(domain)
	if err != nil {
		return nil, err
	}
	if len(m.sources) == 0 {
		return nil, fmt.Errorf("%w: no sources configured", ErrAllSourcesFailed)
	}

	var (
		mu       sync.Mutex
		seen     = make(map[string]struct{})
		failures int
		errs     []error
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, src := range m.sources {
		g.Go(func() error {
			names, err := src.Enumerate(gctx, target)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures++
				errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
				m.logger.Warn("enumeration source failed", "source", src.Name(), "domain", target, "error", err)
				return nil
			}

			kept := 0
			for _, raw := range names {
				name := normalizeName(raw)
				if name == "" || !InScope(name, target) {
					continue
				}
				if _, dup := seen[name]; !dup {
					seen[name] = struct{}{}
					kept++
				}
			}
			m.logger.Info("enumeration source finished", "source", src.Name(), "domain", target, "found", len(names), "new", kept)
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // sources report through errs

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if failures == len(m.sources) {
		return nil, fmt.Errorf("%w for %s: %w", ErrAllSourcesFailed, target, errors.Join(errs...))
	}

	result := make([]string, 0, len(seen))
	for name := range seen {
		result = append(result, name)
	}
	slices.Sort(result)
	return result, nil
}
