package service

import "errors"

var (
	// ErrValidation marks an invalid argument; the call performed no I/O.
	ErrValidation = errors.New("invalid argument")
	// ErrConfig marks a required configuration value no source could
	// resolve; raised before any scanning begins.
	ErrConfig = errors.New("required configuration value is unresolved")
	// ErrNotFound marks a missing target log file.
	ErrNotFound = errors.New("log file not found")
)
