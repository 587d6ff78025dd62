package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is a whitelist of permitted origins.
	// Example: ["http://localhost:3000", "https://example.com"]
	AllowedOrigins []string

	// AllowedMethods specifies which HTTP methods are allowed in CORS requests.
	// Configurable via CORS_ALLOWED_METHODS environment variable.
	// Default: ["GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"]
	AllowedMethods []string

	// AllowedHeaders specifies which request headers are allowed in CORS requests.
	// Configurable via CORS_ALLOWED_HEADERS environment variable.
	// Default: ["Content-Type", "X-Request-ID", "X-Trace-ID"]
	AllowedHeaders []string

	// AllowCredentials indicates whether credentials (cookies, authorization headers) are supported.
	AllowCredentials bool

	// MaxAge specifies how long preflight results can be cached (in seconds).
	// Configurable via CORS_MAX_AGE environment variable.
	// Default: 86400 (24 hours)
	MaxAge int

	// Validator is the origin validation strategy.
	Validator OriginValidator

	// Logger receives CORS policy violation and preflight logs. May be nil.
	Logger CORSLogger
}

// CORS returns an HTTP middleware that handles CORS for cross-origin requests.
// It validates origins using the configured OriginValidator and sets appropriate
// CORS headers for allowed origins.
//
// Behavior:
//   - If Origin header is empty, skip CORS processing (same-origin request)
//   - If Origin is not allowed, log warning and continue without CORS headers
//   - If Origin is allowed and request is OPTIONS (preflight):
//     set the Access-Control-* headers and return 204 No Content
//   - If Origin is allowed and request is not OPTIONS (actual request):
//     set Access-Control-Allow-Origin and Allow-Credentials, pass to next handler
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// same-origin request, nothing to do
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !config.Validator.IsAllowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed", map[string]interface{}{
						"origin":      origin,
						"path":        r.URL.Path,
						"method":      r.Method,
						"remote_addr": r.RemoteAddr,
					})
				}

				// no CORS headers set, the browser blocks the response
				next.ServeHTTP(w, r)
				return
			}

			// echo back the request origin (required for credentials)
			w.Header().Set("Access-Control-Allow-Origin", origin)
			if config.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))

				if config.Logger != nil {
					config.Logger.Debug("CORS: preflight request", map[string]interface{}{
						"origin":            origin,
						"requested_method":  r.Header.Get("Access-Control-Request-Method"),
						"requested_headers": r.Header.Get("Access-Control-Request-Headers"),
					})
				}

				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
