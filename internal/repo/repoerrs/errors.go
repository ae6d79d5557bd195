package repoerrs

import "errors"

var (
	ErrNotFound = errors.New("log file not found")
	ErrDecode   = errors.New("log file is not valid text")
	ErrMaxLines = errors.New("max lines must be positive")
)
