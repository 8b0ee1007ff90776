package analytics

import (
	"net"
	"net/http"
	"strings"
)

// RequestContext carries the raw request attributes recorded with an access.
type RequestContext struct {
	IPAddress string
	UserAgent string
	Referrer  string
}

// ContextFromRequest extracts the client context from an HTTP request.
// The client IP is taken from the first X-Forwarded-For entry, then
// X-Real-IP, then the transport peer address, defaulting to loopback.
func ContextFromRequest(r *http.Request) RequestContext {
	return RequestContext{
		IPAddress: clientIP(r),
		UserAgent: r.Header.Get("User-Agent"),
		Referrer:  r.Referer(),
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	if r.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			return host
		}
		return r.RemoteAddr
	}
	return "127.0.0.1"
}
