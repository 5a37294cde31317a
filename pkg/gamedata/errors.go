package gamedata

import (
	"errors"
	"strings"
)

// Sentinel errors for the failure classes of a table load.
// Loaders wrap them together with the underlying cause, so callers can
// match on both with errors.Is / errors.As.
//
// Example usage:
//
//	tables, err := svc.LoadAllGameTables()
//	if errors.Is(err, gamedata.ErrFileAccess) {
//	    // a table file is missing or unreadable
//	}
var (
	// ErrFileAccess indicates a table file could not be read.
	ErrFileAccess = errors.New("file access failed")

	// ErrParse indicates a table file is not well-formed JSON.
	ErrParse = errors.New("malformed JSON")

	// ErrValidation indicates well-formed content that does not satisfy the table schema.
	ErrValidation = errors.New("schema validation failed")

	// ErrConfiguration indicates missing or invalid configuration, such as an unset root path.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrIncomplete indicates an aggregate that does not cover every table kind or locale.
	ErrIncomplete = errors.New("incomplete table set")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrConfiguration):
		return ExitConfigError
	case errors.Is(err, ErrFileAccess):
		return ExitFileAccess
	case errors.Is(err, ErrParse):
		return ExitParseError
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrIncomplete):
		return ExitGeneralError
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"missing required argument",
}
