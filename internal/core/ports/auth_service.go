package ports

import (
	"context"

	"github.com/sistema-academico/academia-api/internal/core/domain"
	"github.com/sistema-academico/academia-api/internal/validation"
)

// AuthService owns the credential and token lifecycle.
type AuthService interface {
	// Register validates the payload, creates the user and mints a device
	// token. The string is the one-time plaintext token value.
	Register(ctx context.Context, payload validation.Payload) (*domain.User, string, error)
	// Login verifies credentials and mints a device token without revoking
	// tokens held by other devices.
	Login(ctx context.Context, payload validation.Payload) (*domain.User, string, error)
	// Logout revokes every token the user holds, across all devices.
	Logout(ctx context.Context, userID int64) error
	// RefreshToken revokes the caller's tokens for the named device and
	// mints a replacement.
	RefreshToken(ctx context.Context, user *domain.User, payload validation.Payload) (string, error)
	// UpdateProfile updates name and email, and password only when supplied.
	UpdateProfile(ctx context.Context, user *domain.User, payload validation.Payload) (*domain.User, error)
}

// TokenResolver turns a plaintext bearer token into its owner. Used by the
// auth middleware; bumps the token's last-used stamp as a side effect.
type TokenResolver interface {
	Resolve(ctx context.Context, plaintext string) (*domain.User, *domain.AccessToken, error)
}
