package failure

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "parse error", err: &ConfigParseError{Line: 1, Content: "x"}, want: 1},
		{name: "not found", err: &AliasNotFoundError{Token: "x"}, want: 1},
		{name: "exists", err: &AliasExistsError{Alias: "x"}, want: 1},
		{name: "missing alias", err: ErrMissingAlias, want: 1},
		{name: "file system", err: &FileSystemError{Op: "read", Path: "/x", Err: os.ErrPermission}, want: 1},
		{name: "two arguments", err: &BadInvocationError{ArgCount: 2}, want: 2},
		{name: "many arguments", err: &BadInvocationError{ArgCount: 5}, want: 3},
		{name: "wrapped bad invocation", err: fmt.Errorf("dispatch: %w", &BadInvocationError{ArgCount: 2}), want: 2},
		{name: "unknown error", err: errors.New("boom"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "Error at parsing a config file..\n  at line 4:\n  broken", (&ConfigParseError{Line: 4, Content: "broken"}).Error())
	assert.Equal(t, "'proj/x' not found in a configuration file!", (&AliasNotFoundError{Token: "proj/x"}).Error())
	assert.Equal(t, "Alias 'work' already exists!", (&AliasExistsError{Alias: "work"}).Error())

	fsErr := &FileSystemError{Op: "read", Path: "/x", Err: os.ErrPermission}
	assert.ErrorIs(t, fsErr, os.ErrPermission)
}
