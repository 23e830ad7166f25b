package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/worklog-hq/timesheet-backend-go/internal/domain/auth"
	"github.com/worklog-hq/timesheet-backend-go/internal/domain/user"
	"github.com/worklog-hq/timesheet-backend-go/internal/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) ListActiveEmployees(ctx context.Context) ([]user.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	r.users[u.ID] = u
	return u, nil
}

func newService(t *testing.T, users ...user.User) auth.AuthService {
	t.Helper()
	repo := &fakeUserRepo{users: make(map[string]user.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	jwtService := jwt.NewJWTService("test-secret-key", "15m", "168h")
	return NewAuthService(repo, jwtService)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login(t *testing.T) {
	svc := newService(t,
		user.User{
			ID:           "emp-1",
			Name:         "Dewi",
			Email:        "dewi@example.com",
			PasswordHash: hashPassword(t, "correct horse"),
			Role:         user.RoleEmployee,
			IsActive:     true,
		},
		user.User{
			ID:           "emp-2",
			Name:         "Rizky",
			Email:        "rizky@example.com",
			PasswordHash: hashPassword(t, "secret"),
			Role:         user.RoleEmployee,
			IsActive:     false,
		},
	)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		result, err := svc.Login(ctx, auth.LoginRequest{Email: "dewi@example.com", Password: "correct horse"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.Equal(t, "emp-1", result.User.ID)
		assert.Equal(t, "employee", result.User.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "dewi@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "rizky@example.com", Password: "secret"})
		assert.ErrorIs(t, err, auth.ErrUserInactive)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	active := user.User{
		ID:           "emp-1",
		Name:         "Dewi",
		Email:        "dewi@example.com",
		PasswordHash: hashPassword(t, "correct horse"),
		Role:         user.RoleEmployee,
		IsActive:     true,
	}
	svc := newService(t, active)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "dewi@example.com", Password: "correct horse"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		tokens, err := svc.Refresh(ctx, login.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
	})

	t.Run("used token is revoked", func(t *testing.T) {
		_, err := svc.Refresh(ctx, login.RefreshToken)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("access token not accepted", func(t *testing.T) {
		_, err := svc.Refresh(ctx, login.AccessToken)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
