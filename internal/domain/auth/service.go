package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
}
