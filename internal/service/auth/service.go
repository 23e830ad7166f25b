package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/worklog-hq/timesheet-backend-go/internal/domain/auth"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/user"
	"github.com/worklog-hq/timesheet-backend-go/internal/pkg/jwt"
)

type ServiceImpl struct {
	users user.UserRepository
	jwt   jwt.Service
}

func NewAuthService(users user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &ServiceImpl{
		users: users,
		jwt:   jwtService,
	}
}

// Login verifies the credentials and issues an access/refresh token pair.
// Unknown emails and wrong passwords get the same error so the response
// does not reveal which accounts exist.
func (s *ServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !u.IsActive {
		return auth.LoginResponse{}, auth.ErrUserInactive
	}

	tokens, err := s.issueTokens(u)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		TokenResponse: tokens,
		User: auth.UserResponse{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Role:     string(u.Role),
			IsActive: u.IsActive,
		},
	}, nil
}

// Refresh trades a valid refresh token for a new token pair and revokes
// the old one so it cannot be replayed.
func (s *ServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if s.jwt.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	token, err := s.jwt.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	tokenType, _ := token.Get("type")
	if tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, ok := token.Get("user_id")
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	userIDStr, ok := userID.(string)
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.users.GetByID(ctx, userIDStr)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if !u.IsActive {
		return auth.TokenResponse{}, auth.ErrUserInactive
	}

	tokens, err := s.issueTokens(u)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	s.jwt.RevokeToken(refreshToken)

	return tokens, nil
}

func (s *ServiceImpl) issueTokens(u user.User) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.jwt.GenerateAccessToken(u.ID, u.Name, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
	}, nil
}
