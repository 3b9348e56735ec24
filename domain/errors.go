package domain

import "errors"

var (
	// ErrMissingURL indicates a dispatch was requested without a link.
	ErrMissingURL = errors.New("no url to open")

	// ErrEmptyCommand indicates a declared opener has no command to run.
	ErrEmptyCommand = errors.New("opener command is empty")
)
