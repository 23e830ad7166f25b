package project

import "errors"

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrProjectCodeExists = errors.New("project code already exists")
)
