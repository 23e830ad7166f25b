package project

import "time"

// Project entity
type Project struct {
	ID         string
	Code       string
	Name       string
	ClientName string
	IsBillable bool
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
