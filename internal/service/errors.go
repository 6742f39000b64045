package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers use errors.Is to check for them; the API layer maps them to
// HTTP status codes.
var (
	// ErrDuplicateEmail indicates that signup used an e-mail that is already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials indicates an unknown e-mail or a wrong password.
	// The two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrDuplicateEnrollment indicates that the user already studies the language.
	ErrDuplicateEnrollment = errors.New("already enrolled in this language")

	// ErrLanguageNotFound indicates that the language id does not exist.
	ErrLanguageNotFound = errors.New("language not found")
)
