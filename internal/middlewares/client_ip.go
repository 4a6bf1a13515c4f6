package middlewares

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// clientIPHeaders carry a single address and are checked in order before X-Forwarded-For.
var clientIPHeaders = []string{
	"CF-Connecting-IP",
	"True-Client-IP",
	"X-Real-IP",
}

// ClientIPMiddleware resolves the client address and sets RemoteAddr to "IP:port" format for
// consistency throughout the application. Proxy headers are only read when the TCP peer is
// inside one of the trusted prefixes; any other peer is identified by its own address.
func ClientIPMiddleware(trusted []netip.Prefix) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := extractClientIP(r, trusted)

			if clientIP != "" {
				_, port, err := net.SplitHostPort(r.RemoteAddr)
				if err != nil || port == "" {
					port = "0"
				}
				r.RemoteAddr = net.JoinHostPort(clientIP, port)
			}

			next.ServeHTTP(w, r)
		})
	}
}

func extractClientIP(r *http.Request, trusted []netip.Prefix) string {
	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		host = h
	}

	peer, ok := parseAddr(host)
	if !ok {
		return ""
	}
	if !isTrusted(peer, trusted) {
		return peer.String()
	}

	for _, header := range clientIPHeaders {
		if addr, ok := parseAddr(r.Header.Get(header)); ok {
			return addr.String()
		}
	}

	if addr, ok := forwardedFor(r, trusted); ok {
		return addr.String()
	}

	return peer.String()
}

// forwardedFor walks X-Forwarded-For from the nearest hop outwards and returns the first
// address that is not a trusted proxy. Hops left of an unparseable entry are ignored.
func forwardedFor(r *http.Request, trusted []netip.Prefix) (netip.Addr, bool) {
	var hops []string
	for _, value := range r.Header.Values("X-Forwarded-For") {
		hops = append(hops, strings.Split(value, ",")...)
	}

	var last netip.Addr
	for i := len(hops) - 1; i >= 0; i-- {
		addr, ok := parseAddr(hops[i])
		if !ok {
			break
		}
		last = addr
		if !isTrusted(addr, trusted) {
			return addr, true
		}
	}

	return last, last.IsValid()
}

func isTrusted(addr netip.Addr, trusted []netip.Prefix) bool {
	for _, prefix := range trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func parseAddr(s string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}
