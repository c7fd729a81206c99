package model

import (
	"strings"
	"testing"
)

// TestIsValidSubdomain tests the lexical subdomain grammar.
func TestIsValidSubdomain(t *testing.T) {
	t.Parallel()

	longLabel := strings.Repeat("a", 63)
	tooLongLabel := strings.Repeat("a", 64)

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{name: "typical subdomain", candidate: "good.example.com", want: true},
		{name: "two labels", candidate: "example.com", want: true},
		{name: "digits and hyphens", candidate: "api-2.eu-west-1.example.com", want: true},
		{name: "uppercase letters", candidate: "WWW.Example.COM", want: true},
		{name: "numeric label", candidate: "123.example.com", want: true},
		{name: "63 character label", candidate: longLabel + ".example.com", want: true},
		{name: "empty string", candidate: "", want: false},
		{name: "leading and trailing hyphen", candidate: "-bad-.com", want: false},
		{name: "leading hyphen", candidate: "-bad.example.com", want: false},
		{name: "trailing hyphen in inner label", candidate: "good.bad-.com", want: false},
		{name: "hyphen-only tld", candidate: "good.-", want: false},
		{name: "64 character label", candidate: tooLongLabel + ".example.com", want: false},
		{name: "single label", candidate: "localhost", want: false},
		{name: "empty label", candidate: "good..example.com", want: false},
		{name: "leading dot", candidate: ".example.com", want: false},
		{name: "trailing dot", candidate: "example.com.", want: false},
		{name: "scheme", candidate: "http://example.com", want: false},
		{name: "port", candidate: "example.com:8080", want: false},
		{name: "path", candidate: "example.com/admin", want: false},
		{name: "whitespace", candidate: " example.com", want: false},
		{name: "underscore", candidate: "_dmarc.example.com", want: false},
		{name: "wildcard", candidate: "*.example.com", want: false},
		{name: "sublist3r banner noise", candidate: "[-] Enumerating subdomains now for example.com", want: false},
		{name: "unicode", candidate: "bücher.example.com", want: false},
		{name: "too long overall", candidate: strings.Repeat(longLabel+".", 4) + "com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsValidSubdomain(tt.candidate); got != tt.want {
				t.Errorf("IsValidSubdomain(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

// TestIsValidSubdomainDeterministic checks that repeated calls agree.
func TestIsValidSubdomainDeterministic(t *testing.T) {
	t.Parallel()

	inputs := []string{"good.example.com", "-bad-.com", "", "a.b", "x..y"}
	for _, in := range inputs {
		first := IsValidSubdomain(in)
		for range 10 {
			if IsValidSubdomain(in) != first {
				t.Fatalf("IsValidSubdomain(%q) is not deterministic", in)
			}
		}
	}
}

// TestNormalizeCandidate tests line cleanup before validation.
func TestNormalizeCandidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "trims whitespace", raw: "  www.example.com \r\n", want: "www.example.com"},
		{name: "strips root dot", raw: "www.example.com.", want: "www.example.com"},
		{name: "blank stays blank", raw: "   ", want: ""},
		{name: "keeps noise as is", raw: "[+] found", want: "[+] found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeCandidate(tt.raw); got != tt.want {
				t.Errorf("NormalizeCandidate(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
