package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Logs hours against assigned projects
	RoleManager  Role = "manager"  // Can approve/reject submitted timesheets
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
}

// IsManager checks if user holds the manager role
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// CanApprove checks if user can approve submitted timesheets
func (u *User) CanApprove() bool {
	return u.IsActive && u.IsManager()
}
