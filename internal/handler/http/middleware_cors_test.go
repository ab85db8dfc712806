package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

func TestWithCORS(t *testing.T) {
	const allowedOrigin = "http://localhost:5173"

	tests := []struct {
		name           string
		method         string
		origin         string
		wantAllowed    bool
		wantNextCalled bool
		wantStatus     int
		preflight      bool
		allowedOrigins []string
	}{
		{name: "allowed origin", method: http.MethodGet, origin: allowedOrigin, wantAllowed: true, wantNextCalled: true, wantStatus: http.StatusOK},
		{name: "foreign origin", method: http.MethodGet, origin: "http://evil.test", wantNextCalled: true, wantStatus: http.StatusOK},
		{name: "no origin", method: http.MethodGet, wantNextCalled: true, wantStatus: http.StatusOK},
		{name: "plain options request reaches router", method: http.MethodOptions, origin: allowedOrigin, wantAllowed: true, wantNextCalled: true, wantStatus: http.StatusOK},
		{name: "preflight from allowed origin", method: http.MethodOptions, origin: allowedOrigin, preflight: true, wantAllowed: true, wantStatus: http.StatusNoContent},
		{name: "preflight from foreign origin", method: http.MethodOptions, origin: "http://evil.test", preflight: true, wantStatus: http.StatusNoContent},
		{name: "empty allow-list denies every origin", method: http.MethodGet, origin: allowedOrigin, allowedOrigins: []string{}, wantNextCalled: true, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origins := []string{allowedOrigin}
			if tt.allowedOrigins != nil {
				origins = tt.allowedOrigins
			}
			h := &Handler{logger: logger.Nop(), cfg: config.Server{AllowedOrigins: origins}}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/api/todos", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
				req.Header.Set("Access-Control-Request-Headers", "Authorization")
			}
			rr := serve(h.withCORS(next), req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			if tt.wantAllowed {
				assert.Equal(t, tt.origin, rr.Header().Get("Access-Control-Allow-Origin"))
				if tt.preflight {
					assert.Equal(t, http.MethodPatch, rr.Header().Get("Access-Control-Allow-Methods"))
					assert.Equal(t, "Authorization", rr.Header().Get("Access-Control-Allow-Headers"))
					assert.Equal(t, "86400", rr.Header().Get("Access-Control-Max-Age"))
				} else {
					assert.Equal(t, http.CanonicalHeaderKey(traceIDHeader), rr.Header().Get("Access-Control-Expose-Headers"))
				}
			} else {
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
