package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/AntonioJCosta/gogo/internal/core/domain/failure"
	"github.com/AntonioJCosta/gogo/internal/core/domain/target"
	"github.com/AntonioJCosta/gogo/internal/logging"
)

// runChangeCmd emits the command that moves the shell to token's target, or to
// the default alias when token is empty.
func runChangeCmd(ctx context.Context, token string, deps Deps) (int, error) {
	logger := logging.FromContext(ctx)

	var (
		resolved target.Target
		err      error
	)
	if token == "" {
		resolved, err = deps.Resolver.ResolveDefault()
	} else {
		resolved, err = deps.Resolver.Resolve(token)
	}
	if err != nil {
		return failure.StatusError, err
	}

	logger.Debug("resolved alias", "token", token, "target", fmt.Sprintf("%+v", resolved))
	if err := deps.Emitter.Emit(resolved); err != nil {
		return failure.StatusError, err
	}
	return 0, nil
}

// runListCmd echoes the sorted configuration. Listing always exits non-zero so
// the wrapping shell function does not mistake it for a directory change.
func runListCmd(_ context.Context, deps Deps) (int, error) {
	aliases, err := deps.Management.ListAliases()
	if err != nil {
		return failure.StatusError, fmt.Errorf("could not list aliases: %w", err)
	}
	if err := deps.Emitter.PrintConfig(aliases); err != nil {
		return failure.StatusError, err
	}
	return failure.StatusError, nil
}

// runEditCmd opens the config file in the editor, creating it first if needed.
// Afterwards the file is parsed again and a problem is reported as a warning.
func runEditCmd(ctx context.Context, deps Deps) (int, error) {
	logger := logging.FromContext(ctx)

	if err := deps.Store.EnsureConfigDir(); err != nil {
		return failure.StatusError, err
	}
	if _, err := deps.Store.LoadOrInitialize(); err != nil {
		return failure.StatusError, err
	}

	path := deps.Store.Paths().File
	logger.Debug("opening config in editor", "path", path)
	if err := deps.Editor.Edit(ctx, path); err != nil {
		return failure.StatusError, err
	}

	if _, err := deps.Resolver.Load(); err != nil {
		var parseErr *failure.ConfigParseError
		if errors.As(err, &parseErr) {
			shown := deps.Store.Paths().UserFriendly(path)
			fmt.Fprintln(deps.Stderr, deps.Palette.Warning(fmt.Sprintf("Warning: %s does not parse.", shown)))
			fmt.Fprintln(deps.Stderr, deps.Palette.Warning(parseErr.Error()))
		} else {
			logger.Warn("could not re-read config after edit", "error", err)
		}
	}
	return failure.StatusError, nil
}

// runAddCmd bookmarks the working directory as name.
func runAddCmd(_ context.Context, name string, deps Deps) (int, error) {
	cwd, err := deps.Getwd()
	if err != nil {
		return failure.StatusError, &failure.FileSystemError{Op: "determine", Path: "current directory", Err: err}
	}
	if err := deps.Management.AddAlias(name, cwd); err != nil {
		return failure.StatusError, err
	}

	shown := deps.Store.Paths().UserFriendly(cwd)
	if err := deps.Emitter.Echo(fmt.Sprintf("Alias '%s' added: %s", name, shown)); err != nil {
		return failure.StatusError, err
	}
	return 0, nil
}
