package tablesed

import (
	"errors"
	"fmt"

	"github.com/nystrom/tablesed/engine"
)

// CLIError is the root package's error type: it wraps whatever failed
// (an engine.Error, an I/O error, or a plain argument-validation
// failure) and exposes the exit code spec.md §6 assigns to it.
type CLIError struct {
	Kind    engine.ErrorKind
	Wrapped error
}

func (e CLIError) Error() string {
	if e.Wrapped != nil {
		return e.Wrapped.Error()
	}
	return e.Kind.String()
}

func (e CLIError) Unwrap() error { return e.Wrapped }

// ExitCode returns the process exit code spec.md §6 assigns to e's kind.
func (e CLIError) ExitCode() int { return e.Kind.ExitCode() }

func argErr(format string, args ...any) error {
	return CLIError{Kind: engine.ErrArgument, Wrapped: fmt.Errorf(format, args...)}
}

func delimiterErr(format string, args ...any) error {
	return CLIError{Kind: engine.ErrDelimiter, Wrapped: fmt.Errorf(format, args...)}
}

// ArgumentUsageError reports the CLI usage error for spec.md §6's
// "(SCRIPT | -c PATH) INPUT_FILE" positional grammar.
func ArgumentUsageError() error {
	return argErr("usage: tablesed [-d DELIMS] (SCRIPT | -c PATH) INPUT_FILE")
}

func ioErr(err error) error {
	return CLIError{Kind: engine.ErrIO, Wrapped: err}
}

// wrapEngineError promotes an engine.Error (or any other error) to a
// CLIError, preserving the engine's classification when present.
func wrapEngineError(err error) error {
	if err == nil {
		return nil
	}
	var ee engine.Error
	if errors.As(err, &ee) {
		return CLIError{Kind: ee.Kind, Wrapped: err}
	}
	return CLIError{Kind: engine.ErrInternal, Wrapped: err}
}
