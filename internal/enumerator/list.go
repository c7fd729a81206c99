package enumerator

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// maxLineSize bounds a single line of a subdomain list.
const maxLineSize = 1 << 20

// ReadList reads newline-separated candidates from path. Lines are
// trimmed but otherwise kept as they are, blank ones included, so that
// malformed entries are counted as invalid rather than silently lost.
func ReadList(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided list path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open subdomain list: %w", err)
	}
	defer f.Close()

	candidates := make([]string, 0)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		candidates = append(candidates, strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff")))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read subdomain list: %w", err)
	}
	return candidates, nil
}
