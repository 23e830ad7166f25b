package assignment

import "errors"

var (
	ErrAssignmentNotFound = errors.New("project assignment not found")
	ErrAssignmentOverlap  = errors.New("user already assigned to project in this period")
)
