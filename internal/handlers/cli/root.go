package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/AntonioJCosta/gogo/internal/core/ports"
	"github.com/AntonioJCosta/gogo/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// Deps holds everything a gogo invocation needs.
type Deps struct {
	Version string

	Store      ports.ConfigStore
	Resolver   ports.AliasResolver
	Management ports.AliasManagementService
	Emitter    ports.CommandEmitter
	Editor     ports.Editor

	// Getwd returns the directory bookmarked by "-a".
	Getwd func() (string, error)

	Stdout  io.Writer
	Stderr  io.Writer
	Palette ui.Palette
	Logger  *slog.Logger
}

// NewRootCommand creates the single gogo command. Flag parsing is disabled
// because gogo's options are positional and an alias may itself start with '-'.
// The exit status chosen by the action is stored in status.
func NewRootCommand(deps Deps, status *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gogo [OPTIONS]|[DIR_ALIAS]",
		Short: "gogo - bookmark your favorite directories",
		Long:  HelpMessage,

		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},

		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := ParseArgs(NormalizeArgs(args))
			if err != nil {
				return err
			}
			code, err := runRequest(cmd.Context(), req, deps)
			*status = code
			return err
		},
	}
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)
	return cmd
}

// runRequest performs req and returns the exit status for a successful run.
func runRequest(ctx context.Context, req Request, deps Deps) (int, error) {
	switch req.Action {
	case ActionHelp:
		return 0, deps.Emitter.Echo(HelpMessage)
	case ActionVersion:
		return 0, deps.Emitter.Echo("gogo " + deps.Version)
	case ActionList:
		return runListCmd(ctx, deps)
	case ActionEdit:
		return runEditCmd(ctx, deps)
	case ActionAdd:
		return runAddCmd(ctx, req.Token, deps)
	case ActionDefault:
		return runChangeCmd(ctx, "", deps)
	default:
		return runChangeCmd(ctx, req.Token, deps)
	}
}
