package request

import (
	"net"
	"net/http"
	"strings"
)

// UnknownClientKey is the shared fallback bucket for callers whose
// address cannot be determined. All such callers are rate limited
// together; inherited behavior, deliberately not corrected.
const UnknownClientKey = "unknown"

// ClientKey derives the best-effort rate-limit key for a request: the
// first forwarded address if present, then the Client-Ip header, then
// the peer address.
func ClientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if ip := strings.TrimSpace(r.Header.Get("Client-Ip")); ip != "" {
		return ip
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}

	return UnknownClientKey
}
