package tor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nao1215/tornago"
)

// defaultStartupTimeout is how long the embedded daemon may take to bootstrap.
const defaultStartupTimeout = 3 * time.Minute

// EmbeddedTor runs a private Tor daemon through tornago for the lifetime
// of a scan. Bootstrapping usually takes between one and three minutes.
type EmbeddedTor struct {
	process        *tornago.TorProcess
	socksAddr      string
	controlAddr    string
	startupTimeout time.Duration
	logger         *slog.Logger
}

// EmbeddedTorOption configures an EmbeddedTor.
type EmbeddedTorOption func(*EmbeddedTor)

// WithStartupTimeout sets the maximum bootstrap time. Non-positive values
// keep the default.
func WithStartupTimeout(timeout time.Duration) EmbeddedTorOption {
	return func(e *EmbeddedTor) {
		if timeout > 0 {
			e.startupTimeout = timeout
		}
	}
}

// WithTorLogger sets the logger for daemon lifecycle events.
func WithTorLogger(logger *slog.Logger) EmbeddedTorOption {
	return func(e *EmbeddedTor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEmbeddedTor returns an unstarted daemon manager.
func NewEmbeddedTor(opts ...EmbeddedTorOption) *EmbeddedTor {
	e := &EmbeddedTor{
		startupTimeout: defaultStartupTimeout,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start launches the daemon on OS-assigned ports and blocks until it has
// bootstrapped or the startup timeout expires. If ctx is cancelled while
// the daemon is starting, the daemon is stopped and ctx.Err() returned.
func (e *EmbeddedTor) Start(ctx context.Context) error {
	launchCfg, err := tornago.NewTorLaunchConfig(
		tornago.WithTorSocksAddr(":0"),
		tornago.WithTorControlAddr(":0"),
		tornago.WithTorStartupTimeout(e.startupTimeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create Tor launch config: %w", err)
	}

	e.logger.Info("starting embedded Tor daemon", "timeout", e.startupTimeout)
	process, err := tornago.StartTorDaemon(launchCfg)
	if err != nil {
		return fmt.Errorf("failed to start embedded Tor daemon: %w", err)
	}

	if err := ctx.Err(); err != nil {
		_ = process.Stop() //nolint:errcheck // best effort
		return err
	}

	e.process = process
	e.socksAddr = process.SocksAddr()
	e.controlAddr = process.ControlAddr()
	e.logger.Info("embedded Tor daemon ready", "socks", e.socksAddr)
	return nil
}

// Stop shuts the daemon down. It is safe to call on an unstarted or
// already stopped instance.
func (e *EmbeddedTor) Stop() error {
	if e.process == nil {
		return nil
	}
	err := e.process.Stop()
	e.process = nil
	e.socksAddr = ""
	e.controlAddr = ""
	return err
}

// SocksAddr returns the daemon's SOCKS5 "host:port", or "" when stopped.
func (e *EmbeddedTor) SocksAddr() string {
	return e.socksAddr
}

// ControlAddr returns the daemon's control port address, or "" when stopped.
func (e *EmbeddedTor) ControlAddr() string {
	return e.controlAddr
}

// IsRunning reports whether the daemon has been started and not stopped.
func (e *EmbeddedTor) IsRunning() bool {
	return e.process != nil
}

// NewClient returns a Client routed through the running daemon.
func (e *EmbeddedTor) NewClient(timeout time.Duration) (*Client, error) {
	if !e.IsRunning() {
		return nil, ErrTorNotRunning
	}
	return NewClient(e.socksAddr, timeout)
}
