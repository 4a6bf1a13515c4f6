package middlewares

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testTrustedProxies = []netip.Prefix{
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("fd00::/8"),
}

func TestExtractClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expectedIP string
	}{
		{name: "remote addr with port", remoteAddr: "192.168.1.1:12345", expectedIP: "192.168.1.1"},
		{name: "remote addr without port", remoteAddr: "192.168.1.1", expectedIP: "192.168.1.1"},
		{name: "invalid remote addr", remoteAddr: "invalid", expectedIP: ""},
		{name: "ipv6 remote addr", remoteAddr: "[2001:db8::1]:12345", expectedIP: "2001:db8::1"},
		{name: "ipv4-mapped remote addr", remoteAddr: "[::ffff:192.0.2.1]:443", expectedIP: "192.0.2.1"},
		{
			name:       "headers ignored from untrusted peer",
			remoteAddr: "203.0.113.9:40000",
			headers: map[string]string{
				"CF-Connecting-IP": "198.51.100.1",
				"X-Real-IP":        "198.51.100.2",
				"X-Forwarded-For":  "198.51.100.3",
			},
			expectedIP: "203.0.113.9",
		},
		{
			name:       "cloudflare header wins",
			remoteAddr: "10.0.0.1:12345",
			headers: map[string]string{
				"CF-Connecting-IP": "203.0.113.9",
				"True-Client-IP":   "203.0.113.4",
				"X-Forwarded-For":  "203.0.113.6",
			},
			expectedIP: "203.0.113.9",
		},
		{
			name:       "true-client-ip before x-real-ip",
			remoteAddr: "10.0.0.1:12345",
			headers:    map[string]string{"True-Client-IP": "203.0.113.4", "X-Real-IP": "203.0.113.5"},
			expectedIP: "203.0.113.4",
		},
		{
			name:       "invalid header falls through",
			remoteAddr: "10.0.0.1:12345",
			headers:    map[string]string{"True-Client-IP": "not.valid.ip", "X-Real-IP": "203.0.113.7"},
			expectedIP: "203.0.113.7",
		},
		{
			name:       "x-forwarded-for skips trusted hops",
			remoteAddr: "10.0.0.1:12345",
			headers:    map[string]string{"X-Forwarded-For": " 198.51.100.3 , 10.0.0.2, 10.0.0.3"},
			expectedIP: "198.51.100.3",
		},
		{
			name:       "x-forwarded-for spoofed first hop ignored",
			remoteAddr: "10.0.0.1:12345",
			headers:    map[string]string{"X-Forwarded-For": "1.2.3.4, 198.51.100.3"},
			expectedIP: "198.51.100.3",
		},
		{
			name:       "x-forwarded-for stops at garbage",
			remoteAddr: "10.0.0.1:12345",
			headers:    map[string]string{"X-Forwarded-For": "1.2.3.4, junk, 10.0.0.4"},
			expectedIP: "10.0.0.4",
		},
		{
			name:       "x-forwarded-for unparseable uses peer",
			remoteAddr: "10.0.0.1:12345",
			headers:    map[string]string{"X-Forwarded-For": "junk"},
			expectedIP: "10.0.0.1",
		},
		{
			name:       "whitespace trimmed",
			remoteAddr: "10.0.0.1:12345",
			headers:    map[string]string{"X-Real-IP": "  203.0.113.8  "},
			expectedIP: "203.0.113.8",
		},
		{
			name:       "ipv6 trusted peer and header",
			remoteAddr: "[fd00::1]:12345",
			headers:    map[string]string{"X-Real-IP": "2001:db8::2"},
			expectedIP: "2001:db8::2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.expectedIP, extractClientIP(req, testTrustedProxies))
		})
	}
}

func TestExtractClientIP_NoTrustedProxies(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	req.Header.Set("X-Forwarded-For", "198.51.100.3")
	req.Header.Set("CF-Connecting-IP", "198.51.100.4")

	assert.Equal(t, "10.0.0.1", extractClientIP(req, nil))
}

func TestClientIPMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		headers        map[string]string
		expectedRemote string
	}{
		{name: "keeps port", remoteAddr: "203.0.113.1:54321", expectedRemote: "203.0.113.1:54321"},
		{name: "adds zero port", remoteAddr: "203.0.113.1", expectedRemote: "203.0.113.1:0"},
		{name: "proxy header replaces host", remoteAddr: "10.0.0.1:12345", headers: map[string]string{"X-Real-IP": "198.51.100.2"}, expectedRemote: "198.51.100.2:12345"},
		{name: "ipv6 from header", remoteAddr: "10.0.0.1:12345", headers: map[string]string{"CF-Connecting-IP": "2001:db8::5"}, expectedRemote: "[2001:db8::5]:12345"},
		{name: "untrusted peer keeps its address", remoteAddr: "203.0.113.1:54321", headers: map[string]string{"X-Forwarded-For": "198.51.100.2"}, expectedRemote: "203.0.113.1:54321"},
		{name: "unparseable left alone", remoteAddr: "invalid", expectedRemote: "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured string
			handler := ClientIPMiddleware(testTrustedProxies)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured = r.RemoteAddr
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.expectedRemote, captured)
		})
	}
}

func TestAppContext_ClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", (&AppContext{Request: req}).ClientIP())

	req.RemoteAddr = "no-port"
	assert.Equal(t, "no-port", (&AppContext{Request: req}).ClientIP())
}
