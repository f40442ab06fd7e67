package port

import (
	"context"
	"errors"

	sharedauth "condoYaAdmin/internal/shared/auth"
)

var (
	ErrBadCredentials = errors.New("invalid credentials")
	// ErrRefreshRejected marks a refresh token the backend no longer accepts;
	// the session is over and the user must log in again.
	ErrRefreshRejected = errors.New("refresh token rejected")
)

// TokenService is the backend's token endpoint pair.
type TokenService interface {
	Login(ctx context.Context, username, password string) (sharedauth.TokenPair, error)
	// Refresh exchanges the refresh token for a new access token. When the
	// backend does not rotate refresh tokens the returned pair keeps the old one.
	Refresh(ctx context.Context, refreshToken string) (sharedauth.TokenPair, error)
}
