package middleware

import (
	"context"
	"net/http"

	"github.com/attendsys/attendance-backend-go/internal/domain/auth"
	"github.com/attendsys/attendance-backend-go/internal/handler/http/response"
	"github.com/attendsys/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type actorContextKey struct{}

// AuthRequired verifies the access token and resolves the acting identity
// into the request context.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			employeeID, ok := claims["employee_id"].(string)
			if !ok || employeeID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			isAdmin, _ := claims["is_admin"].(bool)

			actor := auth.Context{EmployeeID: employeeID, IsAdmin: isAdmin}
			ctx := context.WithValue(r.Context(), actorContextKey{}, actor)

			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// Actor returns the identity resolved by AuthRequired.
func Actor(ctx context.Context) auth.Context {
	actor, _ := ctx.Value(actorContextKey{}).(auth.Context)
	return actor
}
