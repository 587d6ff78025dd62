package respond

import (
	"net/http"

	"github.com/rasel-stacklearner/blogger/internal/domain/entity"
)

// FieldError is one entry in the details list of a validation response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationFailed writes the structured 400 body for field-level
// validation failures:
//
//	{"error":"validation error","details":[{"field":"title","message":"is required"}]}
func ValidationFailed(w http.ResponseWriter, errs entity.ValidationErrors) {
	details := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		details = append(details, FieldError{Field: e.Field, Message: e.Message})
	}
	JSON(w, http.StatusBadRequest, map[string]any{
		"error":   "validation error",
		"details": details,
	})
}
