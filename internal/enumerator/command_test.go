package enumerator

import (
	"context"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/nao1215/sfac/internal/config"
)

func TestParseToolOutput(t *testing.T) {
	t.Parallel()

	output := strings.Join([]string{
		"                 ____        _     _ _     _   _____",
		"                # Coded By Ahmed Aboul-Ela - @aboul3la",
		"[-] Enumerating subdomains now for example.com",
		"[-] Searching now in Baidu..",
		"[-] Total Unique Subdomains Found: 3",
		"\x1b[92mwww.example.com\x1b[0m",
		"",
		"[+] Found: api.example.com",
		"https://github.com/aboul3la/Sublist3r",
		"  mail.example.com  ",
	}, "\n")

	got, err := ParseToolOutput(strings.NewReader(output))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"www.example.com", "api.example.com", "mail.example.com"} {
		found := false
		for _, g := range got {
			if g == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %q in %v", want, got)
		}
	}
	for _, g := range got {
		if strings.Contains(g, "://") || strings.Contains(g, "\x1b") || g == "" {
			t.Errorf("unexpected entry %q", g)
		}
	}
}

func TestCommandEnumerate(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}

	t.Run("runs command with domain substituted", func(t *testing.T) {
		t.Parallel()

		cmd := NewCommand("echo", config.CommandConfig{
			Command: "sh",
			Args:    []string{"-c", "echo a." + config.DomainPlaceholder + "; echo '[+] b." + config.DomainPlaceholder + "'"},
		})
		if cmd.Name() != "echo" {
			t.Errorf("unexpected name %q", cmd.Name())
		}

		got, err := cmd.Enumerate(context.Background(), "example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"a.example.com", "b.example.com"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("failing command returns error with stderr", func(t *testing.T) {
		t.Parallel()

		cmd := NewCommand("fail", config.CommandConfig{
			Command: "sh",
			Args:    []string{"-c", "echo nope >&2; exit 3"},
		})
		_, err := cmd.Enumerate(context.Background(), "example.com")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "nope") {
			t.Errorf("expected stderr in error, got %v", err)
		}
	})

	t.Run("missing executable returns error", func(t *testing.T) {
		t.Parallel()

		cmd := NewCommand("missing", config.CommandConfig{Command: "sfac-no-such-tool"})
		if _, err := cmd.Enumerate(context.Background(), "example.com"); err == nil {
			t.Error("expected error for missing executable")
		}
	})
}
