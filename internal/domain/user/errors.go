package user

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken indicates an account already exists for the email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidInput indicates a malformed email or a short password.
	ErrInvalidInput = errors.New("invalid account input")
	// ErrInvalidSession indicates a missing, expired or revoked session token.
	ErrInvalidSession = errors.New("invalid session")
)
