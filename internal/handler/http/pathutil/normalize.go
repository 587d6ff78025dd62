package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

const uuidSegment = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/api/posts/` + uuidSegment + `$`), Template: "/api/posts/:id"},
	{Pattern: regexp.MustCompile(`^/api/users/` + uuidSegment + `$`), Template: "/api/users/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with UUIDs (e.g., /api/posts/550e8400-...) to template format
// (e.g., /api/posts/:id). Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/api/posts/550e8400-e29b-41d4-a716-446655440000") // "/api/posts/:id"
//	NormalizePath("/api/posts")                                      // "/api/posts" (unchanged)
//	NormalizePath("/health")                                         // "/health" (unchanged)
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/api/posts/550e8400-e29b-41d4-a716-446655440000/") // "/api/posts/:id"
//	NormalizePath("/api/posts?page=1")                                // "/api/posts"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// no match, static paths like /health and /metrics pass through unchanged
	return path
}
