package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rasel-stacklearner/blogger/internal/domain/entity"
	"github.com/rasel-stacklearner/blogger/internal/handler/http/respond"
	userUC "github.com/rasel-stacklearner/blogger/internal/usecase/user"
)

type CreateHandler struct{ Svc *userUC.Service }

// ServeHTTP registers a new user and returns the inserted record with 201.
// Responds 400 with field details on validation failure and 400 when the
// email is already registered.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	created, err := h.Svc.Create(r.Context(), userUC.CreateInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		if fields, ok := entity.AsValidationErrors(err); ok {
			respond.ValidationFailed(w, fields)
			return
		}
		code := http.StatusInternalServerError
		if errors.Is(err, entity.ErrDuplicateEmail) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, DTO{
		ID:        created.ID,
		Name:      created.Name,
		Email:     created.Email,
		CreatedAt: created.CreatedAt,
	})
}
