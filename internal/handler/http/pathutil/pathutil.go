package pathutil

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractID extracts a UUID from a URL path.
// It removes the specified prefix and validates the remaining string as a UUID.
//
// Example:
//
//	id, err := ExtractID("/api/posts/550e8400-e29b-41d4-a716-446655440000", "/api/posts/")
func ExtractID(path, prefix string) (string, error) {
	idStr := strings.TrimPrefix(path, prefix)
	if idStr == "" || strings.Contains(idStr, "/") {
		return "", ErrInvalidID
	}
	parsed, err := uuid.Parse(idStr)
	if err != nil {
		return "", ErrInvalidID
	}
	return parsed.String(), nil
}
