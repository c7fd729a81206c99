// Package tor builds the HTTP clients used to probe subdomains.
//
// Three network paths are supported: a direct connection, an existing
// SOCKS5 proxy (for example a local Tor daemon on 127.0.0.1:9050), and an
// embedded Tor daemon started through tornago. Each path yields a Client
// whose NewHTTPClient method returns an *http.Client for the prober.
//
// Clients are created once and passed to the components that need them;
// the package keeps no global state.
package tor
