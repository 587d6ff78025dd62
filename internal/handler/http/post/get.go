package post

import (
	"errors"
	"net/http"

	"github.com/rasel-stacklearner/blogger/internal/handler/http/pathutil"
	"github.com/rasel-stacklearner/blogger/internal/handler/http/respond"
	postUC "github.com/rasel-stacklearner/blogger/internal/usecase/post"
)

type GetHandler struct{ Svc *postUC.Service }

// ServeHTTP returns the detail view of a single post: the post itself, its
// author summary and all comments, newest first. The response body is the
// same document that gets cached, so repeated reads within the TTL are
// byte-identical.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/posts/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	detail, err := h.Svc.GetDetail(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, postUC.ErrInvalidPostID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, postUC.ErrPostNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, detail)
}
