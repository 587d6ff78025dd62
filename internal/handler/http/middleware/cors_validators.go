package middleware

import (
	"strings"
)

// OriginValidator is an interface for validating allowed origins in CORS requests.
// It provides an abstraction layer for different origin validation strategies.
type OriginValidator interface {
	// IsAllowed checks if the given origin is permitted for CORS requests.
	// Empty origins return false.
	IsAllowed(origin string) bool

	// GetAllowedOrigins returns the list of allowed origins for logging and debugging.
	// Implementations should return a defensive copy, not a reference to internal state.
	GetAllowedOrigins() []string
}

// WhitelistValidator implements exact-match origin validation for CORS requests.
// It validates origins against a predefined whitelist.
//
// Example usage:
//
//	validator := NewWhitelistValidator([]string{
//	    "http://localhost:3000",
//	    "https://example.com",
//	})
//	allowed := validator.IsAllowed("http://localhost:3000") // true
//	allowed = validator.IsAllowed("http://malicious.com")   // false
type WhitelistValidator struct {
	allowedOrigins []string
}

// NewWhitelistValidator creates a new WhitelistValidator with the given list of allowed origins.
// Origins are normalized: converted to lowercase, trailing slashes removed, empty entries dropped.
func NewWhitelistValidator(origins []string) *WhitelistValidator {
	normalized := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		origin = strings.ToLower(origin)
		origin = strings.TrimSuffix(origin, "/")
		normalized = append(normalized, origin)
	}

	return &WhitelistValidator{
		allowedOrigins: normalized,
	}
}

// IsAllowed checks if the given origin is in the whitelist.
// Comparison is case-insensitive and ignores trailing slashes.
func (v *WhitelistValidator) IsAllowed(origin string) bool {
	if origin == "" {
		return false
	}

	origin = strings.ToLower(strings.TrimSpace(origin))
	origin = strings.TrimSuffix(origin, "/")

	for _, allowed := range v.allowedOrigins {
		if origin == allowed {
			return true
		}
	}

	return false
}

// GetAllowedOrigins returns a defensive copy of the allowed origins list.
func (v *WhitelistValidator) GetAllowedOrigins() []string {
	out := make([]string, len(v.allowedOrigins))
	copy(out, v.allowedOrigins)
	return out
}
