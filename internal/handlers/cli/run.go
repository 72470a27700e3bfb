package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AntonioJCosta/gogo/internal/core/domain/failure"
	"github.com/AntonioJCosta/gogo/internal/logging"
)

// Run executes one gogo invocation and returns the process exit status. It is
// the only place where errors become exit statuses. Diagnostics go to stderr;
// stdout only ever receives shell-evaluable text.
func Run(ctx context.Context, args []string, deps Deps) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if deps.Logger != nil {
		ctx = logging.ContextWithLogger(ctx, deps.Logger)
	}

	// A nil slice would make cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}

	status := 0
	cmd := NewRootCommand(deps, &status)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)

	if ctx.Err() != nil {
		fmt.Fprintln(deps.Stderr, deps.Palette.Warning("Interrupted."))
		return failure.StatusInterrupted
	}
	if err != nil {
		logging.FromContext(ctx).Debug("command failed", "error", err)
		reportError(deps, err)
		return failure.ExitCode(err)
	}
	return status
}

// reportError writes err to stderr. Unexpected arguments are answered with the
// help text; domain errors are shown with their own message, without the
// wrapping context added on the way up.
func reportError(deps Deps, err error) {
	var badInvocation *failure.BadInvocationError
	if errors.As(err, &badInvocation) {
		fmt.Fprintln(deps.Stderr, HelpMessage)
		return
	}
	fmt.Fprintln(deps.Stderr, deps.Palette.Error(userMessage(err)))
}

const missingAliasMessage = "Alias to add not specified!"

func userMessage(err error) string {
	var (
		parseErr    *failure.ConfigParseError
		notFoundErr *failure.AliasNotFoundError
		existsErr   *failure.AliasExistsError
		invalidErr  *failure.InvalidAliasError
		fsErr       *failure.FileSystemError
	)
	switch {
	case errors.As(err, &parseErr):
		return parseErr.Error()
	case errors.As(err, &notFoundErr):
		return notFoundErr.Error()
	case errors.As(err, &existsErr):
		return existsErr.Error()
	case errors.As(err, &invalidErr):
		return invalidErr.Error()
	case errors.Is(err, failure.ErrMissingAlias):
		return missingAliasMessage
	case errors.As(err, &fsErr):
		return fsErr.Error()
	default:
		return err.Error()
	}
}
