package auth

import "context"

// RefreshTokenRepository - interface for refresh_tokens table
type RefreshTokenRepository interface {
	Create(ctx context.Context, token RefreshToken) error
	GetByToken(ctx context.Context, token string) (RefreshToken, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForEmployee(ctx context.Context, employeeID string) error
}
