package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/AntonioJCosta/gogo/internal/adapters/configparser"
	"github.com/AntonioJCosta/gogo/internal/adapters/oscommand"
	"github.com/AntonioJCosta/gogo/internal/adapters/shellemit"
	"github.com/AntonioJCosta/gogo/internal/adapters/yamlsettings"
	"github.com/AntonioJCosta/gogo/internal/core/domain/failure"
	"github.com/AntonioJCosta/gogo/internal/core/domain/paths"
	"github.com/AntonioJCosta/gogo/internal/core/domain/settings"
	"github.com/AntonioJCosta/gogo/internal/core/services/aliasmanagement"
	"github.com/AntonioJCosta/gogo/internal/core/services/aliasresolution"
	"github.com/AntonioJCosta/gogo/internal/handlers/cli"
	"github.com/AntonioJCosta/gogo/internal/handlers/ui"
	"github.com/AntonioJCosta/gogo/internal/logging"
	"github.com/AntonioJCosta/gogo/internal/repositories/configstore"
)

// Version is set at build time
var Version = "1.3.0"

// logLevelEnv overrides the log_level setting.
const logLevelEnv = "GOGO_LOG_LEVEL"

func main() {
	os.Exit(run())
}

func run() int {
	home, err := paths.HomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error determining home directory: %v\n", err)
		return failure.StatusError
	}
	p := paths.Default(home)

	userSettings := settings.Default()
	settingsProvider, err := yamlsettings.NewYAMLProvider(p.Settings)
	if err == nil {
		userSettings, err = settingsProvider.GetSettings()
	}
	if err != nil {
		// Settings are optional; a broken file must not stop directory changes.
		fmt.Fprintf(os.Stderr, "Warning: Could not load settings %v. Continuing with defaults.\n", err)
		userSettings = settings.Default()
	}

	level := logging.ParseLevel(os.Getenv(logLevelEnv), logging.ParseLevel(userSettings.LogLevel, slog.LevelWarn))
	logger := logging.New(logging.Config{Version: Version, Level: level})

	template := configstore.DefaultTemplate(p, configstore.CurrentUsername(), os.Getenv("SHELL"))
	store := configstore.NewFileConfigStore(p, template, logger)
	resolver := aliasresolution.NewService(store, configparser.NewParser(), logger)
	managementSvc := aliasmanagement.NewService(resolver, store, logger)

	cmdExec := oscommand.NewOSCommandExecutor(os.Stdin, os.Stdout, os.Stderr)
	editor := oscommand.NewEditorLauncher(cmdExec, os.Getenv, userSettings.Editor, os.Stderr)

	return cli.Run(context.Background(), os.Args[1:], cli.Deps{
		Version:    Version,
		Store:      store,
		Resolver:   resolver,
		Management: managementSvc,
		Emitter:    shellemit.NewEmitter(os.Stdout, os.Stderr, userSettings.SSHCommand),
		Editor:     editor,
		Getwd:      os.Getwd,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Palette:    ui.NewPalette(userSettings.Color, os.Stderr),
		Logger:     logger,
	})
}
