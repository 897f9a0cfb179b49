package tracking

import "errors"

var (
	// ErrUnauthenticated indicates the caller has no user.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrAlreadyTracking indicates the user already tracks the project.
	ErrAlreadyTracking = errors.New("project already tracked")
)
