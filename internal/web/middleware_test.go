package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func echoRemoteAddr() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.RemoteAddr))
	})
}

func TestTrustedRealIP(t *testing.T) {
	tests := []struct {
		name       string
		trusted    []string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "trusted proxy with X-Real-IP",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "10.1.2.3:4567",
			headers:    map[string]string{"X-Real-IP": "203.0.113.7"},
			want:       "203.0.113.7",
		},
		{
			name:       "trusted proxy with X-Forwarded-For chain",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "10.1.2.3:4567",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.9, 10.1.2.3"},
			want:       "198.51.100.9",
		},
		{
			name:       "untrusted peer keeps its address",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "192.0.2.50:1234",
			headers:    map[string]string{"X-Real-IP": "203.0.113.7"},
			want:       "192.0.2.50:1234",
		},
		{
			name:       "no trusted proxies configured",
			trusted:    nil,
			remoteAddr: "10.1.2.3:4567",
			headers:    map[string]string{"X-Real-IP": "203.0.113.7"},
			want:       "10.1.2.3:4567",
		},
		{
			name:       "bare IP treated as single host",
			trusted:    []string{"10.1.2.3"},
			remoteAddr: "10.1.2.3:4567",
			headers:    map[string]string{"X-Real-IP": "203.0.113.7"},
			want:       "203.0.113.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := trustedRealIP(tt.trusted)(echoRemoteAddr())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if got := rec.Body.String(); got != tt.want {
				t.Errorf("remote addr = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	rl := newRateLimiter(2, time.Minute)
	handler := rl.middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if got := send("192.0.2.1:100"); got != http.StatusOK {
		t.Errorf("first request = %d, want 200", got)
	}
	if got := send("192.0.2.1:101"); got != http.StatusOK {
		t.Errorf("second request = %d, want 200", got)
	}
	// Third request from the same IP is over the limit; a different
	// port does not help since limiting is per host.
	if got := send("192.0.2.1:102"); got != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", got)
	}

	// A different IP has its own bucket.
	if got := send("192.0.2.2:100"); got != http.StatusOK {
		t.Errorf("other IP = %d, want 200", got)
	}
}

func TestSecurityHeaders(t *testing.T) {
	handler := securityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
}
