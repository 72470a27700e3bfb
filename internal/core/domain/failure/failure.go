/*
Package failure defines the error kinds gogo reports to the user. Each kind
carries the process exit status the command-line handler terminates with, so
business logic returns errors and only the top-level handler exits.
*/
package failure

import (
	"errors"
	"fmt"
)

// Exit statuses shared by the error kinds.
const (
	StatusError       = 1
	StatusTwoArgs     = 2
	StatusManyArgs    = 3
	StatusInterrupted = 2
)

// ConfigParseError reports a malformed config line. Line is 0-based.
type ConfigParseError struct {
	Line    int
	Content string
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("Error at parsing a config file..\n  at line %d:\n  %s", e.Line, e.Content)
}

// AliasNotFoundError reports a token whose alias is not in the config file.
type AliasNotFoundError struct {
	Token string
}

func (e *AliasNotFoundError) Error() string {
	return fmt.Sprintf("'%s' not found in a configuration file!", e.Token)
}

// AliasExistsError reports an attempt to add an alias that is already defined.
type AliasExistsError struct {
	Alias string
}

func (e *AliasExistsError) Error() string {
	return fmt.Sprintf("Alias '%s' already exists!", e.Alias)
}

// InvalidAliasError reports an alias name that cannot be written to the config file.
type InvalidAliasError struct {
	Alias string
}

func (e *InvalidAliasError) Error() string {
	return fmt.Sprintf("'%s' is not a valid alias name!", e.Alias)
}

// ErrMissingAlias is returned for "-a" without an alias name.
var ErrMissingAlias = errors.New("alias to add not specified")

// FileSystemError wraps an I/O failure on one of gogo's files.
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error {
	return e.Err
}

// BadInvocationError reports an argument shape gogo does not accept.
// ArgCount selects the exit status.
type BadInvocationError struct {
	ArgCount int
}

func (e *BadInvocationError) Error() string {
	return fmt.Sprintf("unexpected arguments (%d given)", e.ArgCount)
}

// ExitCode returns the status for the invocation: 2 for two arguments, 3 otherwise.
func (e *BadInvocationError) ExitCode() int {
	if e.ArgCount == 2 {
		return StatusTwoArgs
	}
	return StatusManyArgs
}

// ExitCode maps err to the process exit status. nil maps to 0 and any error
// not described by this package maps to StatusError.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var badInvocation *BadInvocationError
	if errors.As(err, &badInvocation) {
		return badInvocation.ExitCode()
	}
	return StatusError
}
