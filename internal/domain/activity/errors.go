package activity

import "errors"

// ErrInvalidInput indicates an entry without a user or type.
var ErrInvalidInput = errors.New("invalid activity input")
