package enumerator

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nao1215/sfac/internal/config"
)

// Source names understood by Build, besides the commands of the
// configuration file.
const (
	SourceSubfinder    = "subfinder"
	SourceCrtSh        = "crtsh"
	SourceHackerTarget = "hackertarget"
)

// BuildOptions carries the shared dependencies of the sources.
type BuildOptions struct {
	// HTTPClient is used by the API sources; it carries the proxy setup.
	HTTPClient *http.Client
	// ProxyURL is handed to subfinder, e.g. "socks5://127.0.0.1:9050".
	ProxyURL string
	// UserAgent is sent to the API sources.
	UserAgent string
	// APITimeout bounds each API request. It replaces the timeout of
	// HTTPClient, which is tuned for probes. Zero means the file setting.
	APITimeout time.Duration
}

// Build returns one Enumerator per name. Names are matched against the
// built-in sources first, then against the commands defined in f.
func Build(names []string, f *config.File, opts BuildOptions) ([]Enumerator, error) {
	if f == nil {
		f = config.NewFile()
	}
	apiTimeout := opts.APITimeout
	if apiTimeout <= 0 {
		apiTimeout = time.Duration(f.Enumeration.APITimeout) * time.Second
	}
	apiOpts := []APIOption{
		WithRate(f.Enumeration.APIRate),
		WithUserAgent(opts.UserAgent),
		WithAPITimeout(apiTimeout),
	}

	sources := make([]Enumerator, 0, len(names))
	for _, name := range names {
		switch name {
		case SourceSubfinder:
			sources = append(sources, NewSubfinder(f.Enumeration.Subfinder, opts.ProxyURL))
		case SourceCrtSh:
			sources = append(sources, NewCrtSh(opts.HTTPClient, apiOpts...))
		case SourceHackerTarget:
			sources = append(sources, NewHackerTarget(opts.HTTPClient, apiOpts...))
		default:
			cmd, ok := f.Enumeration.Commands[name]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
			}
			sources = append(sources, NewCommand(name, cmd))
		}
	}
	return sources, nil
}
