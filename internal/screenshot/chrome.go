package screenshot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultPageTimeout bounds page load plus capture.
const DefaultPageTimeout = 10 * time.Second

// ErrBrowserNotFound is returned when no Chrome or Chromium executable can
// be located.
var ErrBrowserNotFound = errors.New("no Chrome or Chromium executable found")

// browserCandidates are looked up in PATH, then as absolute paths.
var browserCandidates = []string{
	"headless-shell",
	"chromium",
	"chromium-browser",
	"google-chrome",
	"google-chrome-stable",
	"google-chrome-beta",
	"chrome",
	"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	"/Applications/Chromium.app/Contents/MacOS/Chromium",
	`C:\Program Files\Google\Chrome\Application\chrome.exe`,
	`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
}

// Capturer takes a screenshot of a subdomain's front page.
type Capturer interface {
	// Capture saves a screenshot of subdomain into dir and returns the
	// file path. dir is created if missing.
	Capture(ctx context.Context, subdomain, dir string) (string, error)
}

// Chrome is a Capturer backed by one headless browser that is started on
// the first capture and reused, one tab per capture, until Close.
type Chrome struct {
	execPath    string
	pageTimeout time.Duration
	width       int
	height      int
	scheme      string
	proxyServer string
	userAgent   string
	logger      *slog.Logger

	mu            sync.Mutex
	browserCtx    context.Context
	cancelBrowser context.CancelFunc
}

// Option configures Chrome.
type Option func(*Chrome)

// WithExecPath sets the browser executable instead of searching for one.
func WithExecPath(path string) Option {
	return func(c *Chrome) {
		c.execPath = path
	}
}

// WithPageTimeout bounds each capture. Non-positive values keep the default.
func WithPageTimeout(d time.Duration) Option {
	return func(c *Chrome) {
		if d > 0 {
			c.pageTimeout = d
		}
	}
}

// WithWindowSize sets the viewport size in pixels.
func WithWindowSize(width, height int) Option {
	return func(c *Chrome) {
		if width > 0 && height > 0 {
			c.width, c.height = width, height
		}
	}
}

// WithProxyServer routes the browser through a proxy,
// e.g. "socks5://127.0.0.1:9050".
func WithProxyServer(proxy string) Option {
	return func(c *Chrome) {
		c.proxyServer = proxy
	}
}

// WithUserAgent overrides the browser's User-Agent.
func WithUserAgent(ua string) Option {
	return func(c *Chrome) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Chrome) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewChrome returns a Chrome capturer. No browser is started until the
// first Capture.
func NewChrome(opts ...Option) *Chrome {
	c := &Chrome{
		pageTimeout: DefaultPageTimeout,
		width:       1366,
		height:      768,
		scheme:      "http",
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FileName returns the screenshot file name for subdomain, with dots
// replaced by underscores: "www.example.com" becomes "www_example_com.png".
func FileName(subdomain string) string {
	return strings.ReplaceAll(subdomain, ".", "_") + ".png"
}

// Available resolves the browser executable. It returns ErrBrowserNotFound
// if none can be found.
func (c *Chrome) Available() (string, error) {
	if c.execPath != "" {
		path, err := exec.LookPath(c.execPath)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrBrowserNotFound, c.execPath)
		}
		return path, nil
	}
	for _, name := range browserCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", ErrBrowserNotFound
}

// Capture implements Capturer.
func (c *Chrome) Capture(ctx context.Context, subdomain, dir string) (string, error) {
	browserCtx, err := c.browser()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tabCtx, cancelTab := chromedp.NewContext(browserCtx)
	defer cancelTab()
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, c.pageTimeout)
	defer cancelTimeout()
	stop := context.AfterFunc(ctx, cancelTimeout)
	defer stop()

	var buf []byte
	url := c.scheme + "://" + subdomain
	if err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.CaptureScreenshot(&buf),
	); err != nil {
		return "", fmt.Errorf("failed to capture %s: %w", url, err)
	}

	path := filepath.Join(dir, FileName(subdomain))
	if err := os.WriteFile(path, buf, 0o600); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}
	c.logger.Debug("screenshot saved", "subdomain", subdomain, "path", path)
	return path, nil
}

// browser starts the shared headless browser on first use.
func (c *Chrome) browser() (context.Context, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.browserCtx != nil {
		return c.browserCtx, nil
	}

	execPath, err := c.Available()
	if err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(execPath),
		chromedp.WindowSize(c.width, c.height),
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Flag("ignore-certificate-errors", true),
	)
	if c.proxyServer != "" {
		opts = append(opts, chromedp.ProxyServer(c.proxyServer))
	}
	if c.userAgent != "" {
		opts = append(opts, chromedp.UserAgent(c.userAgent))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	if err := chromedp.Run(browserCtx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	c.browserCtx = browserCtx
	c.cancelBrowser = func() {
		cancelBrowser()
		cancelAlloc()
	}
	c.logger.Debug("headless browser started", "path", execPath)
	return browserCtx, nil
}

// Close shuts the browser down. It is safe to call more than once.
func (c *Chrome) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancelBrowser != nil {
		c.cancelBrowser()
	}
	c.browserCtx = nil
	c.cancelBrowser = nil
	return nil
}
