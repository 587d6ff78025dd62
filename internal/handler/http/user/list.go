package user

import (
	"net/http"

	"github.com/rasel-stacklearner/blogger/internal/handler/http/respond"
	userUC "github.com/rasel-stacklearner/blogger/internal/usecase/user"
)

type ListHandler struct{ Svc *userUC.Service }

// ServeHTTP returns all users ordered by creation time descending,
// projected to id/name/email/createdAt. An empty store serializes as [].
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(users))
	for _, u := range users {
		out = append(out, DTO{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
		})
	}

	respond.JSON(w, http.StatusOK, out)
}
