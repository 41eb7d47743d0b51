package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gtz123456/Trip-Planner/internal/config"
)

// CORS returns middleware that applies Cross-Origin Resource Sharing headers
// and answers preflight requests before they reach the router.
func CORS(cfg *config.CORSConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Disabled {
				next.ServeHTTP(w, r)
				return
			}

			if origin := allowedOrigin(cfg, r.Header.Get("Origin")); origin != "" {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(cfg.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", strings.Join(cfg.AllowedHeaders, ", "))
				if cfg.MaxAge > 0 {
					h.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// allowedOrigin resolves the Access-Control-Allow-Origin value for a request.
// A wildcard configuration matches every caller, including requests that
// carry no Origin header at all.
func allowedOrigin(cfg *config.CORSConfig, origin string) string {
	for _, o := range cfg.Origins {
		if o == "*" {
			return "*"
		}
		if origin != "" && o == origin {
			return origin
		}
	}
	return ""
}
