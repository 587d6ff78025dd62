package user

import (
	"net/http"

	userUC "github.com/rasel-stacklearner/blogger/internal/usecase/user"
)

// Register registers all user-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *userUC.Service) {
	mux.Handle("GET  /api/users", ListHandler{svc})
	mux.Handle("POST /api/users", CreateHandler{svc})
}
