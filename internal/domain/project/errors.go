package project

import "errors"

var (
	// ErrProjectNotFound indicates no project matches the slug or ID.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrSlugTaken indicates another project already uses the slug.
	ErrSlugTaken = errors.New("project slug already in use")
)
