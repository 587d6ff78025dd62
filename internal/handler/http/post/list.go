package post

import (
	"net/http"

	"github.com/rasel-stacklearner/blogger/internal/handler/http/respond"
	postUC "github.com/rasel-stacklearner/blogger/internal/usecase/post"
)

type ListHandler struct{ Svc *postUC.Service }

// ServeHTTP returns all posts ordered by creation time descending, each
// annotated with its author summary. An empty store serializes as [].
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]SummaryDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, SummaryDTO{
			ID:        p.Post.ID,
			Title:     p.Post.Title,
			Content:   p.Post.Content,
			CreatedAt: p.Post.CreatedAt,
			Author:    p.Author,
		})
	}

	respond.JSON(w, http.StatusOK, out)
}
