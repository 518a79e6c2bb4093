package auth

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrInvalidToken           = errors.New("invalid token")
	ErrTokenExpired           = errors.New("token expired")
	ErrRefreshTokenRevoked    = errors.New("refresh token revoked")
	ErrRefreshTokenNotFound   = errors.New("refresh token not found")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
