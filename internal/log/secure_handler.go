package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// sensitiveKeys are attribute keys whose values are never logged.
var sensitiveKeys = map[string]bool{
	// HTTP headers
	"authorization":       true,
	"cookie":              true,
	"set-cookie":          true,
	"x-api-key":           true,
	"x-auth-token":        true,
	"proxy-authorization": true,

	// Enumeration API credentials
	"api_key":       true,
	"apikey":        true,
	"api-key":       true,
	"access_token":  true,
	"refresh_token": true,
	"secret_key":    true,
	"secretkey":     true,
	"password":      true,
	"passwd":        true,
	"secret":        true,
	"token":         true,

	// Session
	"session":    true,
	"session_id": true,
	"sessionid":  true,

	// Credentials
	"credential":  true,
	"credentials": true,
	"auth":        true,
}

// sensitiveKeywords mark a key as sensitive when they appear anywhere in it.
// The bare word "key" is left out: it matches too many harmless names.
var sensitiveKeywords = []string{
	"password", "passwd", "secret", "token", "auth", "credential", "apikey", "api_key",
}

// sensitivePatterns match secret-looking values regardless of their key.
var sensitivePatterns = []*regexp.Regexp{
	// JWT
	regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`),
	regexp.MustCompile(`(?i)^bearer\s+.+`),
	regexp.MustCompile(`(?i)^basic\s+[A-Za-z0-9+/=]+$`),
	// Long opaque strings, the usual shape of provider API keys.
	regexp.MustCompile(`^[a-zA-Z0-9]{32,}$`),
	regexp.MustCompile(`^AKIA[0-9A-Z]{16}$`),
	regexp.MustCompile(`^gh[pousr]_[A-Za-z0-9]{36,}$`),
}

// userinfoPattern finds scheme://user:pass@ inside free text.
var userinfoPattern = regexp.MustCompile(`([a-zA-Z][a-zA-Z0-9+.-]*://)[^/@\s]+@`)

// MaskValue replaces sensitive values.
const MaskValue = "***REDACTED***"

// SecureHandler wraps an slog.Handler and sanitizes attributes before
// passing records on.
type SecureHandler struct {
	handler slog.Handler
}

// NewSecureHandler wraps handler. A nil handler falls back to the default
// slog handler.
func NewSecureHandler(handler slog.Handler) *SecureHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &SecureHandler{handler: handler}
}

// Enabled delegates to the wrapped handler.
func (h *SecureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle sanitizes the record's attributes and forwards it.
func (h *SecureHandler) Handle(ctx context.Context, r slog.Record) error {
	sanitized := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		sanitized.AddAttrs(h.sanitizeAttr(a))
		return true
	})
	return h.handler.Handle(ctx, sanitized)
}

// WithAttrs returns a handler carrying the sanitized attrs.
func (h *SecureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sanitizedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		sanitizedAttrs[i] = h.sanitizeAttr(a)
	}
	return &SecureHandler{handler: h.handler.WithAttrs(sanitizedAttrs)}
}

// WithGroup returns a handler nested under name.
func (h *SecureHandler) WithGroup(name string) slog.Handler {
	return &SecureHandler{handler: h.handler.WithGroup(name)}
}

func (h *SecureHandler) sanitizeAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		sanitizedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			sanitizedAttrs[i] = h.sanitizeAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(sanitizedAttrs...)}
	}

	keyLower := strings.ToLower(a.Key)
	if sensitiveKeys[keyLower] || containsSensitiveKeyword(keyLower) {
		return slog.String(a.Key, MaskValue)
	}

	// Errors and stringers may embed proxy URLs, so resolve them first.
	a.Value = a.Value.Resolve()
	var strVal string
	switch a.Value.Kind() {
	case slog.KindString:
		strVal = a.Value.String()
	case slog.KindAny:
		if err, ok := a.Value.Any().(error); ok && err != nil {
			strVal = err.Error()
		} else {
			return a
		}
	default:
		return a
	}

	if isSensitiveValue(strVal) {
		return slog.String(a.Key, MaskValue)
	}
	if masked := MaskURLCredentials(strVal); masked != strVal {
		return slog.String(a.Key, masked)
	}
	return a
}

func containsSensitiveKeyword(key string) bool {
	for _, keyword := range sensitiveKeywords {
		if strings.Contains(key, keyword) {
			return true
		}
	}
	return false
}

func isSensitiveValue(value string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(value) {
			return true
		}
	}
	return false
}

// MaskURLCredentials replaces the userinfo of every URL in s with MaskValue,
// e.g. "socks5://user:pw@host:1080" becomes "socks5://***REDACTED***@host:1080".
func MaskURLCredentials(s string) string {
	if !strings.Contains(s, "@") {
		return s
	}
	return userinfoPattern.ReplaceAllString(s, "${1}"+MaskValue+"@")
}

// NewSecureLogger returns a text logger writing to w. Verbose enables
// Debug; otherwise only Warn and above are written.
func NewSecureLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewSecureHandler(slog.NewTextHandler(w, handlerOptions(verbose))))
}

// NewSecureJSONLogger is NewSecureLogger with JSON output.
func NewSecureJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewSecureHandler(slog.NewJSONHandler(w, handlerOptions(verbose))))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
