package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultConcurrency is the number of probes allowed in flight at once.
	DefaultConcurrency = 10

	// DefaultTimeout bounds a single probe, connection and response included.
	// A probe that cannot finish within this window is reported as N/A.
	DefaultTimeout = 10 * time.Second

	// DefaultSnapshotDir is used when --snapshots is given without a folder.
	DefaultSnapshotDir = "snapshots"

	// DefaultSnapshotTimeout bounds page load plus capture for one screenshot.
	DefaultSnapshotTimeout = 10 * time.Second

	// DefaultTorStartupTimeout is the maximum time to wait for the embedded
	// Tor daemon to bootstrap when --tor is set.
	DefaultTorStartupTimeout = 3 * time.Minute

	// DefaultUserAgent identifies the checker in target access logs.
	DefaultUserAgent = "sfac/1.0 (+https://github.com/nao1215/sfac)"

	// AppName is the application name used for XDG directory paths.
	AppName = "sfac"

	// ReportExtension is appended to report paths that lack it.
	ReportExtension = ".csv"
)

// DefaultSources are the enumeration sources used when neither flags nor the
// configuration file name any.
var DefaultSources = []string{"subfinder"}

// Config holds all options for one run. It is populated from CLI flags and
// the optional configuration file, then passed down explicitly.
type Config struct {
	// Domains are enumerated for subdomains. Mutually exclusive with InputFile.
	Domains []string

	// InputFile is a newline-separated list of subdomains to check directly.
	InputFile string

	// OutputFile is the CSV report path. It always ends in ".csv".
	OutputFile string

	// MarkdownFile optionally receives a Markdown summary of the run.
	MarkdownFile string

	// JSONFile optionally receives the complete run as JSON.
	JSONFile string

	// Concurrency is the maximum number of probes in flight.
	// Non-positive values are passed on; the checker replaces them with
	// its default and logs a warning.
	Concurrency int

	// Timeout bounds each probe.
	Timeout time.Duration

	// Snapshots enables screenshots of accessible subdomains.
	Snapshots bool

	// SnapshotDir is where screenshots are written.
	SnapshotDir string

	// SnapshotTimeout bounds each screenshot.
	SnapshotTimeout time.Duration

	// BrowserPath is the Chrome or Chromium executable used for screenshots.
	// Empty means search PATH.
	BrowserPath string

	// Sources names the enumerators to run for Domains.
	Sources []string

	// ProxyAddress routes probes through a SOCKS5 proxy in "host:port" form.
	ProxyAddress string

	// UseTor starts an embedded Tor daemon and routes probes through it.
	UseTor bool

	// TorStartupTimeout bounds the embedded Tor bootstrap.
	TorStartupTimeout time.Duration

	// UserAgent is sent with every probe.
	UserAgent string

	// Headers are extra request headers sent with every probe.
	Headers map[string]string

	// ConfigFilePath is the explicit configuration file path, if any.
	ConfigFilePath string

	// File is the parsed configuration file; never nil after loading.
	File *File

	// Verbose enables debug logging.
	Verbose bool

	// NoBanner suppresses the startup banner.
	NoBanner bool
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Concurrency:       DefaultConcurrency,
		Timeout:           DefaultTimeout,
		SnapshotDir:       DefaultSnapshotDir,
		SnapshotTimeout:   DefaultSnapshotTimeout,
		TorStartupTimeout: DefaultTorStartupTimeout,
		UserAgent:         DefaultUserAgent,
		Sources:           append([]string(nil), DefaultSources...),
		Headers:           make(map[string]string),
		File:              NewFile(),
	}
}

// DefaultOutputFile returns the timestamp-derived report name used when
// --output is not given, e.g. "output_1735689600.csv".
func DefaultOutputFile(now time.Time) string {
	return fmt.Sprintf("output_%d%s", now.Unix(), ReportExtension)
}

// EnsureCSVExtension appends ".csv" to path unless it already ends with it.
func EnsureCSVExtension(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ReportExtension) {
		return path
	}
	return path + ReportExtension
}

// XDGConfigDir returns the XDG config directory for sfac.
// On Linux: ~/.config/sfac
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and fills in clamped values.
// It returns the first problem found.
func (c *Config) Validate() error {
	if len(c.Domains) == 0 && c.InputFile == "" {
		return ErrNoInput
	}
	if len(c.Domains) > 0 && c.InputFile != "" {
		return ErrConflictingInputs
	}

	if c.OutputFile == "" {
		return ErrNoOutput
	}
	c.OutputFile = EnsureCSVExtension(c.OutputFile)

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.Snapshots && c.SnapshotDir == "" {
		c.SnapshotDir = DefaultSnapshotDir
	}
	if c.Snapshots && c.SnapshotTimeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.UseTor && c.ProxyAddress != "" {
		return ErrConflictingProxies
	}

	if len(c.Domains) > 0 && len(c.Sources) == 0 {
		return ErrNoSources
	}

	return nil
}
