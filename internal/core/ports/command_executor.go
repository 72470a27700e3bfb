package ports

import "context"

// CommandExecutor defines an interface for running interactive external programs.
type CommandExecutor interface {
	// Run starts name with args attached to the user's terminal and waits for it to exit.
	Run(ctx context.Context, name string, args ...string) error
}
