package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/fieldworks/attendance-bot-go/internal/domain/auth"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	jwt.Service

	adminPasswordHash string
}

func NewAuthService(jwtService jwt.Service, adminPasswordHash string) auth.AuthService {
	return &AuthServiceImpl{
		Service:           jwtService,
		adminPasswordHash: adminPasswordHash,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.adminPasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken()
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresAt: expiresAt,
	}, nil
}
