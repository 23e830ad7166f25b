package user

import "context"

// UserRepository - interface for the users table
type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ListActiveEmployees(ctx context.Context) ([]User, error)
	Create(ctx context.Context, u User) (User, error)
}
