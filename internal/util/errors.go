package util

import "errors"

var (
	// ErrValidation is wrapped with a descriptive message via fmt.Errorf,
	// e.g. fmt.Errorf("%w: invalid email format", util.ErrValidation).
	ErrValidation = errors.New("validation failed")

	ErrUserNotFound           = errors.New("user not found")
	ErrEmailRegistered        = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrCourseNotFound         = errors.New("course not found")
	ErrAlreadyEnrolled        = errors.New("already enrolled in this course")
	ErrNotEnrolled            = errors.New("not enrolled in this course")
	ErrInvalidModuleIndex     = errors.New("module index out of range")
	ErrModuleAlreadyCompleted = errors.New("module already completed")
	ErrCourseAlreadyCompleted = errors.New("course already marked as completed")
)
