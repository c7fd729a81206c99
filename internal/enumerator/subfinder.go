package enumerator

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/nao1215/sfac/internal/config"
	"github.com/projectdiscovery/subfinder/v2/pkg/runner"
)

// domainRunner is the part of subfinder's runner used here.
type domainRunner interface {
	EnumerateSingleDomainWithCtx(ctx context.Context, domain string, writers []io.Writer) (map[string]map[string]struct{}, error)
}

func newSubfinderRunner(options *runner.Options) (domainRunner, error) {
	return runner.NewRunner(options)
}

// Subfinder enumerates through subfinder's passive sources, in process.
type Subfinder struct {
	options   *runner.Options
	newRunner func(*runner.Options) (domainRunner, error)

	once   sync.Once
	runner domainRunner
	err    error
}

// NewSubfinder returns a Subfinder tuned by cfg. proxyURL, when set, routes
// source requests through a proxy such as "socks5://127.0.0.1:9050". The
// runner is built on first use so that commands which never enumerate do
// not pay for it.
func NewSubfinder(cfg config.SubfinderConfig, proxyURL string) *Subfinder {
	return &Subfinder{
		options: &runner.Options{
			Threads:            cfg.Threads,
			Timeout:            cfg.Timeout,
			MaxEnumerationTime: cfg.MaxEnumerationTime,
			ProviderConfig:     cfg.ProviderConfig,
			All:                cfg.All,
			Proxy:              proxyURL,
			Silent:             true,
		},
		newRunner: newSubfinderRunner,
	}
}

// Name implements Enumerator.
func (s *Subfinder) Name() string {
	return "subfinder"
}

// Enumerate implements Enumerator.
func (s *Subfinder) Enumerate(ctx context.Context, domain string) ([]string, error) {
	s.once.Do(func() {
		s.runner, s.err = s.newRunner(s.options)
	})
	if s.err != nil {
		return nil, fmt.Errorf("failed to create subfinder runner: %w", s.err)
	}

	found, err := s.runner.EnumerateSingleDomainWithCtx(ctx, domain, []io.Writer{io.Discard})
	if err != nil {
		return nil, fmt.Errorf("subfinder failed for %s: %w", domain, err)
	}

	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	return names, nil
}
