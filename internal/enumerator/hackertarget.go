package enumerator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// DefaultHackerTargetURL is the HackerTarget API endpoint.
const DefaultHackerTargetURL = "https://api.hackertarget.com"

// ErrAPIQuota is returned when an API answers with a quota or usage error
// instead of results.
var ErrAPIQuota = errors.New("API quota exceeded")

// HackerTarget enumerates names through the HackerTarget host search API.
type HackerTarget struct {
	apiSource
}

// NewHackerTarget returns a HackerTarget source sending requests with httpClient.
func NewHackerTarget(httpClient *http.Client, opts ...APIOption) *HackerTarget {
	return &HackerTarget{apiSource: newAPISource(httpClient, DefaultHackerTargetURL, opts)}
}

// Name implements Enumerator.
func (h *HackerTarget) Name() string {
	return "hackertarget"
}

// Enumerate implements Enumerator. The API answers with "host,ip" lines,
// or with a single plain-text error line.
func (h *HackerTarget) Enumerate(ctx context.Context, domain string) ([]string, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("q", domain).
		Get("/hostsearch/")
	if err != nil {
		return nil, fmt.Errorf("hackertarget request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("hackertarget returned %s", resp.Status())
	}

	body := strings.TrimSpace(resp.String())
	if body == "" || strings.HasPrefix(body, "error check your search parameter") || body == "No records found" {
		return []string{}, nil
	}
	if strings.HasPrefix(body, "API count exceeded") {
		return nil, fmt.Errorf("hackertarget: %w", ErrAPIQuota)
	}

	var names []string
	for _, line := range strings.Split(body, "\n") {
		host, _, found := strings.Cut(strings.TrimSpace(line), ",")
		if !found {
			continue
		}
		names = append(names, host)
	}
	return names, nil
}
