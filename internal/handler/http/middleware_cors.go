package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

const corsMaxAge = 86400

// withCORS allows cross-origin requests from the configured origins only.
// Preflight requests are answered with 204 and never reach the router.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: h.cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:     []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:     []string{traceIDHeader},
		MaxAge:             corsMaxAge,
		OptionsPassthrough: true,
	}
	// an empty allow-list means no origin, not every origin
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowOriginFunc = func(*http.Request, string) bool { return false }
	}

	return cors.Handler(opts)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPreflight(r) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}
