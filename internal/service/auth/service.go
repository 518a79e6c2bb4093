package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendsys/attendance-backend-go/internal/domain/auth"
	"github.com/attendsys/attendance-backend-go/internal/domain/employee"
	"github.com/attendsys/attendance-backend-go/internal/pkg/database"
	"github.com/attendsys/attendance-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	tx        database.TxManager
	employees employee.EmployeeRepository
	tokens    auth.RefreshTokenRepository
	jwt       jwt.Service
}

func NewAuthService(
	tx database.TxManager,
	employees employee.EmployeeRepository,
	tokens auth.RefreshTokenRepository,
	jwtService jwt.Service,
) *AuthService {
	return &AuthService{
		tx:        tx,
		employees: employees,
		tokens:    tokens,
		jwt:       jwtService,
	}
}

// Login verifies the credentials and issues an access/refresh token pair.
// The refresh token is persisted so it can be rotated and revoked later.
func (a *AuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := a.employees.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if !emp.IsActive || emp.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, emp)
}

// Refresh rotates a refresh token: the presented token is revoked and a
// fresh pair is issued in the same transaction.
func (a *AuthService) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	stored, err := a.tokens.GetByToken(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if stored.RevokedAt != nil {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return auth.TokenResponse{}, auth.ErrTokenExpired
	}

	emp, err := a.employees.GetByID(ctx, stored.EmployeeID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.IsActive {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	var response auth.TokenResponse
	err = a.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := a.tokens.Revoke(txCtx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
		response, err = a.issueTokens(txCtx, emp)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return response, nil
}

// Logout revokes the presented refresh token and blacklists the access token
// for the remainder of its lifetime.
func (a *AuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if refreshToken != "" {
		if err := a.tokens.Revoke(ctx, refreshToken); err != nil &&
			!errors.Is(err, auth.ErrRefreshTokenNotFound) {
			return err
		}
	}
	if accessToken != "" {
		a.jwt.RevokeToken(accessToken)
	}
	return nil
}

func (a *AuthService) issueTokens(ctx context.Context, emp employee.Employee) (auth.TokenResponse, error) {
	var response auth.TokenResponse
	var err error

	response.AccessToken, response.AccessTokenExpiresIn, err = a.jwt.GenerateAccessToken(emp.ID, emp.Email, emp.IsAdmin)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	response.RefreshToken, response.RefreshTokenExpiresIn, err = a.jwt.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	err = a.tokens.Create(ctx, auth.RefreshToken{
		EmployeeID: emp.ID,
		Token:      response.RefreshToken,
		ExpiresAt:  time.Unix(response.RefreshTokenExpiresIn, 0),
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return response, nil
}
