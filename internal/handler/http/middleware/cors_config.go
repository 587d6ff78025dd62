package middleware

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// LoadCORSConfig loads CORS configuration from environment variables.
//
// Environment Variables:
//   - CORS_ALLOWED_ORIGINS: Comma-separated list of allowed origins (required)
//   - CORS_ALLOWED_METHODS: Comma-separated list of allowed HTTP methods (optional)
//   - CORS_ALLOWED_HEADERS: Comma-separated list of allowed request headers (optional)
//   - CORS_MAX_AGE: Preflight cache duration in seconds (optional)
//
// Example:
//
//	CORS_ALLOWED_ORIGINS=http://localhost:3000,https://blog.example.com
//	CORS_ALLOWED_METHODS=GET,POST
//	CORS_MAX_AGE=86400
//
// CORS_ALLOWED_ORIGINS is fail-closed: when it is missing or invalid an error
// is returned and the caller decides whether to run without CORS.
// Note: Caller must inject Logger after loading (Logger is not set by this function).
func LoadCORSConfig() (*CORSConfig, error) {
	origins, err := loadOrigins()
	if err != nil {
		return nil, fmt.Errorf("failed to load allowed origins: %w", err)
	}

	methods, err := loadMethods()
	if err != nil {
		return nil, fmt.Errorf("failed to load allowed methods: %w", err)
	}

	headers, err := loadHeaders()
	if err != nil {
		return nil, fmt.Errorf("failed to load allowed headers: %w", err)
	}

	maxAge, err := loadMaxAge()
	if err != nil {
		return nil, fmt.Errorf("failed to load max age: %w", err)
	}

	return &CORSConfig{
		AllowedOrigins:   origins,
		AllowedMethods:   methods,
		AllowedHeaders:   headers,
		AllowCredentials: true,
		MaxAge:           maxAge,
		Validator:        NewWhitelistValidator(origins),
	}, nil
}

// loadOrigins reads CORS_ALLOWED_ORIGINS and validates each entry.
// Each origin must be a bare http(s) URL without path, query, fragment
// or trailing slash.
func loadOrigins() ([]string, error) {
	originsStr := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if originsStr == "" {
		return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS environment variable is required")
	}

	originList := strings.Split(originsStr, ",")
	origins := make([]string, 0, len(originList))

	for _, originStr := range originList {
		originStr = strings.TrimSpace(originStr)
		if originStr == "" {
			continue
		}

		u, err := url.Parse(originStr)
		if err != nil {
			return nil, fmt.Errorf("invalid origin URL '%s': %w", originStr, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, fmt.Errorf("origin must use http or https scheme: %s", originStr)
		}
		if u.Path != "" && u.Path != "/" {
			return nil, fmt.Errorf("origin must not include path: %s", originStr)
		}
		if u.RawQuery != "" {
			return nil, fmt.Errorf("origin must not include query string: %s", originStr)
		}
		if u.Fragment != "" {
			return nil, fmt.Errorf("origin must not include fragment: %s", originStr)
		}
		if strings.HasSuffix(originStr, "/") {
			return nil, fmt.Errorf("origin must not have trailing slash: %s", originStr)
		}

		origins = append(origins, originStr)
	}

	if len(origins) == 0 {
		return nil, fmt.Errorf("at least one valid origin must be configured in CORS_ALLOWED_ORIGINS")
	}

	return origins, nil
}

// loadMethods reads CORS_ALLOWED_METHODS, defaulting to all standard verbs.
func loadMethods() ([]string, error) {
	methodsStr := strings.TrimSpace(os.Getenv("CORS_ALLOWED_METHODS"))
	if methodsStr == "" {
		return []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}, nil
	}

	validMethods := map[string]bool{
		"GET":     true,
		"POST":    true,
		"PUT":     true,
		"DELETE":  true,
		"PATCH":   true,
		"OPTIONS": true,
	}

	methodList := strings.Split(methodsStr, ",")
	methods := make([]string, 0, len(methodList))
	for _, method := range methodList {
		method = strings.ToUpper(strings.TrimSpace(method))
		if method == "" {
			continue
		}
		if !validMethods[method] {
			return nil, fmt.Errorf("invalid HTTP method '%s': must be one of GET, POST, PUT, DELETE, PATCH, OPTIONS", method)
		}
		methods = append(methods, method)
	}

	if len(methods) == 0 {
		return nil, fmt.Errorf("at least one valid HTTP method must be configured in CORS_ALLOWED_METHODS")
	}

	return methods, nil
}

// loadHeaders reads CORS_ALLOWED_HEADERS, defaulting to the headers the API uses.
func loadHeaders() ([]string, error) {
	headersStr := strings.TrimSpace(os.Getenv("CORS_ALLOWED_HEADERS"))
	if headersStr == "" {
		return []string{"Content-Type", "X-Request-ID", "X-Trace-ID"}, nil
	}

	headerList := strings.Split(headersStr, ",")
	headers := make([]string, 0, len(headerList))
	for _, header := range headerList {
		header = strings.TrimSpace(header)
		if header == "" {
			continue
		}
		headers = append(headers, header)
	}

	if len(headers) == 0 {
		return nil, fmt.Errorf("at least one valid header must be configured in CORS_ALLOWED_HEADERS")
	}

	return headers, nil
}

// loadMaxAge reads CORS_MAX_AGE, defaulting to 24 hours.
func loadMaxAge() (int, error) {
	maxAgeStr := strings.TrimSpace(os.Getenv("CORS_MAX_AGE"))
	if maxAgeStr == "" {
		return 86400, nil
	}

	maxAge, err := strconv.Atoi(maxAgeStr)
	if err != nil {
		return 0, fmt.Errorf("invalid CORS_MAX_AGE '%s': must be a valid integer", maxAgeStr)
	}
	if maxAge < 0 {
		return 0, fmt.Errorf("CORS_MAX_AGE must be non-negative, got: %d", maxAge)
	}

	return maxAge, nil
}
