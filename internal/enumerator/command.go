package enumerator

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strings"

	"github.com/nao1215/sfac/internal/config"
)

// ansiPattern matches terminal color sequences, which Sublist3r emits.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// Command enumerates by running an external tool and reading its
// standard output, one name per line.
type Command struct {
	name string
	cfg  config.CommandConfig
}

// NewCommand returns a Command called name that runs cfg.
func NewCommand(name string, cfg config.CommandConfig) *Command {
	return &Command{name: name, cfg: cfg}
}

// Name implements Enumerator.
func (c *Command) Name() string {
	return c.name
}

// Enumerate implements Enumerator.
func (c *Command) Enumerate(ctx context.Context, domain string) ([]string, error) {
	cmd := exec.CommandContext(ctx, c.cfg.Command, c.cfg.CommandArgs(domain)...) //nolint:gosec // command comes from the user's configuration
	cmd.Dir = c.cfg.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s failed: %w: %s", c.cfg.Command, err, msg)
		}
		return nil, fmt.Errorf("%s failed: %w", c.cfg.Command, err)
	}
	return ParseToolOutput(&stdout)
}

// ParseToolOutput extracts names from enumeration tool output. Color codes
// are stripped; blank lines and lines containing a URL are skipped; status
// lines such as "[+] Found: a.example.com" contribute their last field.
func ParseToolOutput(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(ansiPattern.ReplaceAllString(scanner.Text(), ""))
		if line == "" || strings.Contains(line, "://") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			fields := strings.Fields(line)
			line = fields[len(fields)-1]
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}
