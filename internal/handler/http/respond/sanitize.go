package respond

import (
	"regexp"
)

// credential patterns masked out of logged error messages
var (
	// passwords embedded in connection URLs (postgres://, redis://)
	urlPasswordPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)

	// key=value password fields in keyword/value DSNs
	dsnPasswordPattern = regexp.MustCompile(`(?i)(password=)\S+`)
)

// SanitizeError returns the error message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = urlPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = dsnPasswordPattern.ReplaceAllString(msg, "${1}****")

	return msg
}
