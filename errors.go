package optext

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by lookups (option by name, group by title) when
// nothing matches.
var ErrNotFound = errors.New("not found")

// ErrHelp is returned by ParseArgs when the help option is given on the
// command line.
var ErrHelp = errors.New("help requested")

// ErrVersion is returned by ParseArgs when the version option is given on
// the command line.
var ErrVersion = errors.New("version requested")

// ConflictError is returned when registering an option whose alias is
// already taken by another option in the same container, or when an alias
// reassignment would strip an option of its last alias.
type ConflictError struct {
	Alias string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting option alias %q", e.Alias)
}

// UsageError indicates malformed or conflicting command line input. It is
// meant to be shown to the end user together with the usage line; ParseOrExit
// does exactly that and exits with status 2.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

func usageErrorf(format string, a ...interface{}) *UsageError {
	return &UsageError{Msg: fmt.Sprintf(format, a...)}
}

// IsUsageError reports whether err is (or wraps) a UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
