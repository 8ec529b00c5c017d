package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig narrows what cross-origin callers may do. Zero values mean any
// origin, any method, no extra headers.
type CORSConfig struct {
	// AllowOrigins lists permitted origins; empty allows all ("*").
	AllowOrigins []string
	// AllowMethods lists permitted methods, rendered into the preflight
	// answer as given.
	AllowMethods []string
	// AllowHeaders lists request headers callers may send.
	AllowHeaders []string
	// MaxAge is the preflight cache lifetime in seconds; 0 disables caching.
	MaxAge int
}

// CORS answers preflight requests and stamps the allow headers on every
// other response.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			allowed, ok := allowOrigin(cfg.AllowOrigins, origin)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			header := w.Header()
			header.Set("Access-Control-Allow-Origin", allowed)
			header.Add("Vary", "Origin")

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if allowMethods != "" {
					header.Set("Access-Control-Allow-Methods", allowMethods)
				}
				if allowHeaders != "" {
					header.Set("Access-Control-Allow-Headers", allowHeaders)
				}
				if cfg.MaxAge > 0 {
					header.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// allowOrigin resolves the Access-Control-Allow-Origin value for origin.
func allowOrigin(allowed []string, origin string) (string, bool) {
	if len(allowed) == 0 {
		return "*", true
	}
	for _, candidate := range allowed {
		if candidate == "*" {
			return "*", true
		}
		if strings.EqualFold(candidate, origin) {
			return origin, true
		}
	}
	return "", false
}
