package enumerator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCrtShEnumerate(t *testing.T) {
	t.Parallel()

	t.Run("parses name_value lists", func(t *testing.T) {
		t.Parallel()

		var gotQuery, gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("q")
			gotUA = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `[{"common_name":"example.com","name_value":"www.example.com\nmail.example.com"},{"common_name":"*.example.com","name_value":"*.example.com"}]`)
		}))
		defer srv.Close()

		c := NewCrtSh(srv.Client(), WithBaseURL(srv.URL), WithRate(0), WithUserAgent("sfac-test"))
		if c.Name() != "crtsh" {
			t.Errorf("unexpected name %q", c.Name())
		}

		got, err := c.Enumerate(context.Background(), "example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		joined := strings.Join(got, ",")
		for _, want := range []string{"www.example.com", "mail.example.com", "*.example.com"} {
			if !strings.Contains(joined, want) {
				t.Errorf("expected %q in %v", want, got)
			}
		}
		if gotQuery != "%.example.com" {
			t.Errorf("unexpected query %q", gotQuery)
		}
		if gotUA != "sfac-test" {
			t.Errorf("unexpected user agent %q", gotUA)
		}
	})

	t.Run("slow answer outlives the shared client timeout", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(300 * time.Millisecond)
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `[{"common_name":"slow.example.com","name_value":"slow.example.com"}]`)
		}))
		defer srv.Close()

		shared := srv.Client()
		shared.Timeout = 50 * time.Millisecond

		c := NewCrtSh(shared, WithBaseURL(srv.URL), WithRate(0), WithAPITimeout(5*time.Second))
		got, err := c.Enumerate(context.Background(), "example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) == 0 || got[0] != "slow.example.com" {
			t.Errorf("unexpected names %v", got)
		}
	})

	t.Run("server error is reported", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := NewCrtSh(srv.Client(), WithBaseURL(srv.URL), WithRate(0))
		if _, err := c.Enumerate(context.Background(), "example.com"); err == nil {
			t.Error("expected error for 502")
		}
	})
}

func TestHackerTargetEnumerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    []string
		wantErr error
	}{
		{
			name: "host,ip lines",
			body: "www.example.com,93.184.216.34\nmail.example.com,93.184.216.35\n",
			want: []string{"www.example.com", "mail.example.com"},
		},
		{
			name: "no records",
			body: "No records found",
			want: []string{},
		},
		{
			name:    "quota exceeded",
			body:    "API count exceeded - Increase Quota with Membership",
			wantErr: ErrAPIQuota,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/hostsearch/" || r.URL.Query().Get("q") != "example.com" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			h := NewHackerTarget(srv.Client(), WithBaseURL(srv.URL), WithRate(0), WithAPITimeout(5*time.Second))
			got, err := h.Enumerate(context.Background(), "example.com")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAPIRateLimit(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "a.example.com,127.0.0.1")
	}))
	defer srv.Close()

	h := NewHackerTarget(srv.Client(), WithBaseURL(srv.URL), WithRate(5))
	start := time.Now()
	for range 3 {
		if _, err := h.Enumerate(context.Background(), "example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	// Burst of one at 5/s: the second and third calls wait about 200ms each.
	if elapsed := time.Since(start); elapsed < 300*time.Millisecond {
		t.Errorf("expected pacing, three calls took %v", elapsed)
	}
}

func TestAPIRateLimitHonorsContext(t *testing.T) {
	t.Parallel()

	h := NewHackerTarget(nil, WithBaseURL("http://127.0.0.1:1"), WithRate(0.001))
	// Consume the single token so the next Wait would block for a long time.
	h.limiter.Allow()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := h.Enumerate(ctx, "example.com"); err == nil {
		t.Error("expected error when the limiter cannot be satisfied in time")
	}
}
