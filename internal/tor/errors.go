package tor

import "errors"

// Proxy errors.
var (
	// ErrProxyNotSOCKS5 is returned when the proxy answers but does not
	// speak SOCKS5, or refuses every offered authentication method.
	ErrProxyNotSOCKS5 = errors.New("proxy is not a SOCKS5 proxy")

	// ErrProxyCannotConnect is returned when no TCP connection to the proxy
	// can be made.
	ErrProxyCannotConnect = errors.New("cannot connect to proxy")

	// ErrProxyTimeout is returned when the proxy does not answer in time.
	ErrProxyTimeout = errors.New("timeout connecting to proxy")

	// ErrProxyAuthFailed is returned when the proxy rejects the credentials.
	ErrProxyAuthFailed = errors.New("proxy rejected credentials")

	// ErrInvalidProxyAddress is returned for addresses that are neither
	// "host:port" nor a socks5:// URL.
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port or socks5://host:port")

	// ErrTorNotRunning is returned when a client is requested from an
	// embedded daemon that has not been started.
	ErrTorNotRunning = errors.New("embedded Tor daemon is not running")
)

// ProxyStatus is the result of CheckConnection.
type ProxyStatus int

const (
	// ProxyStatusOK means the proxy accepted a SOCKS5 CONNECT request.
	ProxyStatusOK ProxyStatus = iota
	// ProxyStatusWrongType means the peer is not a usable SOCKS5 proxy.
	ProxyStatusWrongType
	// ProxyStatusCannotConnect means the proxy address is unreachable.
	ProxyStatusCannotConnect
	// ProxyStatusTimeout means the proxy did not answer in time.
	ProxyStatusTimeout
	// ProxyStatusAuthFailed means the proxy rejected the credentials.
	ProxyStatusAuthFailed
)

// String returns a human-readable description of the status.
func (s ProxyStatus) String() string {
	switch s {
	case ProxyStatusOK:
		return "OK"
	case ProxyStatusWrongType:
		return "wrong type (not SOCKS5)"
	case ProxyStatusCannotConnect:
		return "cannot connect"
	case ProxyStatusTimeout:
		return "timeout"
	case ProxyStatusAuthFailed:
		return "authentication failed"
	default:
		return "unknown"
	}
}

// Error returns the error for this status, or nil if OK.
func (s ProxyStatus) Error() error {
	switch s {
	case ProxyStatusOK:
		return nil
	case ProxyStatusWrongType:
		return ErrProxyNotSOCKS5
	case ProxyStatusCannotConnect:
		return ErrProxyCannotConnect
	case ProxyStatusTimeout:
		return ErrProxyTimeout
	case ProxyStatusAuthFailed:
		return ErrProxyAuthFailed
	default:
		return errors.New("unknown proxy status")
	}
}
