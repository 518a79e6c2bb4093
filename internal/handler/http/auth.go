package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendsys/attendance-backend-go/internal/domain/auth"
	"github.com/attendsys/attendance-backend-go/internal/handler/http/response"
	"github.com/attendsys/attendance-backend-go/internal/pkg/jwt"
	authService "github.com/attendsys/attendance-backend-go/internal/service/auth"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService *authService.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(service *authService.AuthService, jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{authService: service, jwtService: jwtService}
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokens, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))
	response.SuccessWithMessage(w, "Login successful", tokens)
}

// Refresh implements AuthHandler.
func (h *AuthHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken := h.refreshTokenFromRequest(r)
	if refreshToken == "" {
		response.Unauthorized(w, "Refresh token required")
		return
	}

	tokens, err := h.authService.Refresh(r.Context(), refreshToken)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))
	response.SuccessWithMessage(w, "Token refreshed", tokens)
}

// Logout implements AuthHandler.
func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	accessToken := jwtauth.TokenFromHeader(r)
	refreshToken := h.refreshTokenFromRequest(r)

	if err := h.authService.Logout(r.Context(), accessToken, refreshToken); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged out", nil)
}

func (h *AuthHandlerImpl) refreshTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var req auth.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
		return req.RefreshToken
	}
	return ""
}
