package post

import (
	"net/http"

	postUC "github.com/rasel-stacklearner/blogger/internal/usecase/post"
)

// Register registers all post-related HTTP handlers with the given mux.
// It sets up routes for listing posts, fetching a single post's detail
// view and creating posts.
func Register(mux *http.ServeMux, svc *postUC.Service) {
	mux.Handle("GET  /api/posts", ListHandler{svc})
	mux.Handle("GET  /api/posts/", GetHandler{svc})
	mux.Handle("POST /api/posts", CreateHandler{svc})
}
