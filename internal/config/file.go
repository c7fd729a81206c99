package config

import "strings"

// DomainPlaceholder is replaced by the target domain in command arguments.
const DomainPlaceholder = "{domain}"

// Default subfinder tuning, matching the values the subfinder CLI ships with.
const (
	DefaultSubfinderThreads            = 10
	DefaultSubfinderTimeout            = 30 // seconds
	DefaultSubfinderMaxEnumerationTime = 10 // minutes

	// DefaultAPIRate is the request rate, per second, for HTTP API sources.
	DefaultAPIRate = 1.0

	// DefaultAPITimeout is the per-request timeout, in seconds, for HTTP API
	// sources. It is independent of the probe timeout.
	DefaultAPITimeout = 60
)

// File represents the structure of the .sfac configuration file.
type File struct {
	// Enumeration configures how domains are turned into candidates.
	Enumeration EnumerationConfig `yaml:"enumeration,omitempty"`

	// Probe configures the HTTP accessibility check.
	Probe ProbeConfig `yaml:"probe,omitempty"`
}

// EnumerationConfig configures the enumeration sources.
type EnumerationConfig struct {
	// Sources names the enumerators to run when --sources is not given.
	// Built-in names: subfinder, crtsh, hackertarget. Any key of Commands
	// is also accepted.
	Sources []string `yaml:"sources,omitempty"`

	// Subfinder tunes the in-process subfinder runner.
	Subfinder SubfinderConfig `yaml:"subfinder,omitempty"`

	// Commands defines external enumeration tools by name.
	// Their standard output is parsed one subdomain per line.
	Commands map[string]CommandConfig `yaml:"commands,omitempty"`

	// APIRate limits requests per second to HTTP API sources.
	APIRate float64 `yaml:"apiRate,omitempty"`

	// APITimeout bounds each request to HTTP API sources, in seconds.
	APITimeout int `yaml:"apiTimeout,omitempty"`
}

// SubfinderConfig mirrors the subset of subfinder runner options we expose.
type SubfinderConfig struct {
	// Threads is the number of concurrent goroutines for resolving.
	Threads int `yaml:"threads,omitempty"`

	// Timeout is the per-source timeout in seconds.
	Timeout int `yaml:"timeout,omitempty"`

	// MaxEnumerationTime is the overall limit in minutes.
	MaxEnumerationTime int `yaml:"maxEnumerationTime,omitempty"`

	// ProviderConfig points at subfinder's provider-config.yaml holding API keys.
	ProviderConfig string `yaml:"providerConfig,omitempty"`

	// All enables every passive source, including slow ones.
	All bool `yaml:"all,omitempty"`
}

// CommandConfig describes an external enumeration command.
type CommandConfig struct {
	// Command is the executable, looked up in PATH.
	Command string `yaml:"command"`

	// Args are passed to Command; DomainPlaceholder is substituted.
	Args []string `yaml:"args,omitempty"`

	// Dir is the working directory; empty means the current directory.
	Dir string `yaml:"dir,omitempty"`
}

// ProbeConfig configures outbound probe requests.
type ProbeConfig struct {
	// UserAgent overrides DefaultUserAgent.
	UserAgent string `yaml:"userAgent,omitempty"`

	// Headers are added to every probe request.
	Headers map[string]string `yaml:"headers,omitempty"`
}

// NewFile returns a File holding the built-in defaults.
func NewFile() *File {
	f := &File{}
	f.applyDefaults()
	return f
}

// applyDefaults fills zero values with built-in defaults.
// The sublist3r command is always available unless the file redefines it.
func (f *File) applyDefaults() {
	e := &f.Enumeration
	if e.Subfinder.Threads <= 0 {
		e.Subfinder.Threads = DefaultSubfinderThreads
	}
	if e.Subfinder.Timeout <= 0 {
		e.Subfinder.Timeout = DefaultSubfinderTimeout
	}
	if e.Subfinder.MaxEnumerationTime <= 0 {
		e.Subfinder.MaxEnumerationTime = DefaultSubfinderMaxEnumerationTime
	}
	if e.APIRate <= 0 {
		e.APIRate = DefaultAPIRate
	}
	if e.APITimeout <= 0 {
		e.APITimeout = DefaultAPITimeout
	}
	if e.Commands == nil {
		e.Commands = make(map[string]CommandConfig)
	}
	if _, ok := e.Commands["sublist3r"]; !ok {
		e.Commands["sublist3r"] = CommandConfig{
			Command: "python",
			Args:    []string{"Sublist3r/sublist3r.py", "-d", DomainPlaceholder},
		}
	}
	if f.Probe.Headers == nil {
		f.Probe.Headers = make(map[string]string)
	}
}

// CommandArgs returns the arguments of cmd with the domain substituted.
func (c CommandConfig) CommandArgs(domain string) []string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = strings.ReplaceAll(a, DomainPlaceholder, domain)
	}
	return args
}

// Apply copies file-level settings into cfg where the flags left defaults.
// Sources from the file win only when the flags did not name any.
func (f *File) Apply(cfg *Config, sourcesFromFlags bool) {
	cfg.File = f

	if !sourcesFromFlags && len(f.Enumeration.Sources) > 0 {
		cfg.Sources = append([]string(nil), f.Enumeration.Sources...)
	}
	if f.Probe.UserAgent != "" && cfg.UserAgent == DefaultUserAgent {
		cfg.UserAgent = f.Probe.UserAgent
	}
	if cfg.Headers == nil {
		cfg.Headers = make(map[string]string)
	}
	for k, v := range f.Probe.Headers {
		if _, set := cfg.Headers[k]; !set {
			cfg.Headers[k] = v
		}
	}
}
