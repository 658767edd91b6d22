package auth

import (
	"context"
)

type AuthService interface {
	// Login checks the password against the configured admin hash and
	// issues an admin access token.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
}
