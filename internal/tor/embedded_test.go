package tor

import (
	"errors"
	"testing"
	"time"
)

func TestNewEmbeddedTor(t *testing.T) {
	t.Parallel()

	t.Run("creates with default timeout", func(t *testing.T) {
		t.Parallel()

		embedded := NewEmbeddedTor()
		if embedded.startupTimeout != 3*time.Minute {
			t.Errorf("expected default timeout 3m, got %v", embedded.startupTimeout)
		}
		if embedded.logger == nil {
			t.Error("expected default logger")
		}
	})

	testCases := []struct {
		name     string
		timeout  time.Duration
		expected time.Duration
	}{
		{"1 minute", time.Minute, time.Minute},
		{"30 seconds", 30 * time.Second, 30 * time.Second},
		{"zero keeps default", 0, 3 * time.Minute},
		{"negative keeps default", -time.Second, 3 * time.Minute},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			embedded := NewEmbeddedTor(WithStartupTimeout(tc.timeout))
			if embedded.startupTimeout != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, embedded.startupTimeout)
			}
		})
	}
}

func TestEmbeddedTorBeforeStart(t *testing.T) {
	t.Parallel()

	embedded := NewEmbeddedTor(WithTorLogger(nil))

	if embedded.SocksAddr() != "" || embedded.ControlAddr() != "" {
		t.Error("expected empty addresses before start")
	}
	if embedded.IsRunning() {
		t.Error("expected IsRunning to be false before start")
	}
	if err := embedded.Stop(); err != nil {
		t.Errorf("expected no error stopping unstarted instance, got %v", err)
	}
	if _, err := embedded.NewClient(30 * time.Second); !errors.Is(err, ErrTorNotRunning) {
		t.Errorf("expected ErrTorNotRunning, got %v", err)
	}
}
