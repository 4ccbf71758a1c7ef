package service

import "errors"

var (
	ErrInvalidUsername     = errors.New("username must be a valid email or phone number")
	ErrUserExists          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrForbidden           = errors.New("only admin can delete projects")
	ErrAttachmentsDisabled = errors.New("attachment storage is not configured")
)
