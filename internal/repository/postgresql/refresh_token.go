package postgresql

import (
	"context"

	"github.com/attendsys/attendance-backend-go/internal/domain/auth"
	"github.com/attendsys/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

// Create implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Create(ctx context.Context, token auth.RefreshToken) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (id, employee_id, token, expires_at, created_at)
		VALUES (uuidv7(), $1, $2, $3, NOW())
	`

	_, err := q.Exec(ctx, query, token.EmployeeID, token.Token, token.ExpiresAt)
	return err
}

// GetByToken implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) GetByToken(ctx context.Context, token string) (auth.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, token, expires_at, revoked_at, created_at
		FROM refresh_tokens
		WHERE token = $1
	`

	var rt auth.RefreshToken
	err := q.QueryRow(ctx, query, token).Scan(
		&rt.ID, &rt.EmployeeID, &rt.Token, &rt.ExpiresAt, &rt.RevokedAt, &rt.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.RefreshToken{}, auth.ErrRefreshTokenNotFound
		}
		return auth.RefreshToken{}, err
	}

	return rt, nil
}

// Revoke implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE token = $1 AND revoked_at IS NULL
	`

	result, err := q.Exec(ctx, query, token)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return auth.ErrRefreshTokenNotFound
	}

	return nil
}

// RevokeAllForEmployee implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) RevokeAllForEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE employee_id = $1 AND revoked_at IS NULL
	`

	_, err := q.Exec(ctx, query, employeeID)
	return err
}
