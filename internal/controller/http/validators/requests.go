package validators

import (
	"errors"

	"github.com/egz13/logprobe/internal/resolver"
)

var (
	ErrInvalidLogLevel = errors.New("log level must be one of error, warn, all")
	ErrInvalidMaxLines = errors.New("max_lines must be positive")
	ErrEmptyKeyword    = errors.New("keyword must be specified")
)

func ValidateAnalyze(logLevel string, maxLines int) error {
	if !resolver.Kind(logLevel).Valid() {
		return ErrInvalidLogLevel
	}
	if maxLines <= 0 {
		return ErrInvalidMaxLines
	}
	return nil
}

func ValidateSearch(keyword, logLevel string) error {
	if keyword == "" {
		return ErrEmptyKeyword
	}
	if logLevel != "" && !resolver.Kind(logLevel).Valid() {
		return ErrInvalidLogLevel
	}
	return nil
}
