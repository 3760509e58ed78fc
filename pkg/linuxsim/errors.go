package linuxsim

import (
	"errors"
	"io/fs"
	"strings"
)

// Filesystem errors. The virtual filesystem returns these wrapped in an
// *fs.PathError, so callers should compare with errors.Is:
//
//	err := fsys.Mkdir("/tmp/a")
//	if errors.Is(err, linuxsim.ErrAlreadyExists) {
//	    // path is taken
//	}
//
// ErrNotFound, ErrAlreadyExists and ErrInvalidArgument alias the io/fs
// sentinels so code written against the standard library keeps working.
var (
	// ErrNotFound indicates the path (or one of its parents) does not exist.
	ErrNotFound = fs.ErrNotExist

	// ErrNotADirectory indicates a directory was required but a file was found.
	ErrNotADirectory = errors.New("not a directory")

	// ErrIsADirectory indicates a file was required but a directory was found.
	ErrIsADirectory = errors.New("is a directory")

	// ErrAlreadyExists indicates the path is already taken.
	ErrAlreadyExists = fs.ErrExist

	// ErrDirectoryNotEmpty indicates a non-recursive removal of a directory with children.
	ErrDirectoryNotEmpty = errors.New("directory not empty")

	// ErrInvalidArgument indicates an operation that is never allowed, such as removing the root.
	ErrInvalidArgument = fs.ErrInvalid
)

// Errors raised by the layers around the core.
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSessionNotFound indicates an unknown or evicted session id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionLimit indicates the server refuses to open more sessions.
	ErrSessionLimit = errors.New("session limit reached")

	// ErrUsage indicates the command line was used incorrectly.
	ErrUsage = errors.New("usage error")

	// ErrServerFailed indicates the HTTP server could not start or stopped abnormally.
	ErrServerFailed = errors.New("server failed")
)

// Describe returns the message a Unix shell prints for err, e.g.
// "No such file or directory". Unknown errors fall back to err.Error().
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "No such file or directory"
	case errors.Is(err, ErrNotADirectory):
		return "Not a directory"
	case errors.Is(err, ErrIsADirectory):
		return "Is a directory"
	case errors.Is(err, ErrAlreadyExists):
		return "File exists"
	case errors.Is(err, ErrDirectoryNotEmpty):
		return "Directory not empty"
	case errors.Is(err, ErrInvalidArgument):
		return "Invalid argument"
	}
	return err.Error()
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrServerFailed):
		return ExitServerError
	case errors.Is(err, ErrInvalidArgument):
		return ExitGeneralError
	}

	// cobra reports argument and flag problems as plain errors
	errStr := err.Error()
	for _, pattern := range usagePatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}
