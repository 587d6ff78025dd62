package post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rasel-stacklearner/blogger/internal/domain/entity"
	"github.com/rasel-stacklearner/blogger/internal/handler/http/respond"
	postUC "github.com/rasel-stacklearner/blogger/internal/usecase/post"
)

type CreateHandler struct{ Svc *postUC.Service }

// ServeHTTP creates a new post and returns the inserted record.
// Responds 200 on success, 400 with field details on validation failure
// and 400 when the author does not exist.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		AuthorID string `json:"authorId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	created, err := h.Svc.Create(r.Context(), postUC.CreateInput{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		if fields, ok := entity.AsValidationErrors(err); ok {
			respond.ValidationFailed(w, fields)
			return
		}
		code := http.StatusInternalServerError
		if errors.Is(err, entity.ErrAuthorNotFound) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, DTO{
		ID:        created.ID,
		Title:     created.Title,
		Content:   created.Content,
		AuthorID:  created.AuthorID,
		CreatedAt: created.CreatedAt,
	})
}
