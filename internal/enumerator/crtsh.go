package enumerator

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// DefaultCrtShURL is the crt.sh certificate transparency search endpoint.
const DefaultCrtShURL = "https://crt.sh"

// crtShEntry is one certificate record; NameValue holds the certificate's
// names separated by newlines.
type crtShEntry struct {
	CommonName string `json:"common_name"`
	NameValue  string `json:"name_value"`
}

// CrtSh enumerates names from certificate transparency logs via crt.sh.
type CrtSh struct {
	apiSource
}

// NewCrtSh returns a crt.sh source sending requests with httpClient.
func NewCrtSh(httpClient *http.Client, opts ...APIOption) *CrtSh {
	return &CrtSh{apiSource: newAPISource(httpClient, DefaultCrtShURL, opts)}
}

// Name implements Enumerator.
func (c *CrtSh) Name() string {
	return "crtsh"
}

// Enumerate implements Enumerator.
func (c *CrtSh) Enumerate(ctx context.Context, domain string) ([]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var entries []crtShEntry
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"q": "%." + domain, "output": "json"}).
		ForceContentType("application/json").
		SetResult(&entries).
		Get("/")
	if err != nil {
		return nil, fmt.Errorf("crt.sh request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("crt.sh returned %s", resp.Status())
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.Split(e.NameValue, "\n")...)
		if e.CommonName != "" {
			names = append(names, e.CommonName)
		}
	}
	return names, nil
}
