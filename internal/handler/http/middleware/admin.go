package middleware

import (
	"net/http"

	"github.com/attendsys/attendance-backend-go/internal/domain/auth"
	"github.com/attendsys/attendance-backend-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !Actor(r.Context()).IsAdmin {
			response.HandleError(w, auth.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
