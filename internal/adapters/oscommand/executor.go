package oscommand

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/AntonioJCosta/gogo/internal/core/ports"
	"golang.org/x/term"
)

const terminalDevice = "/dev/tty"

// OSCommandExecutor implements the CommandExecutor interface by running programs
// attached to the user's terminal.
type OSCommandExecutor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewOSCommandExecutor creates a new OSCommandExecutor using the given streams.
func NewOSCommandExecutor(stdin io.Reader, stdout, stderr io.Writer) ports.CommandExecutor {
	return &OSCommandExecutor{stdin: stdin, stdout: stdout, stderr: stderr}
}

// Run starts name and waits for it to exit. When stdout is captured (as it is
// under `eval "$(gogo -e)"`), the program is attached to the controlling
// terminal instead so interactive programs still work.
func (e *OSCommandExecutor) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if !isTerminal(e.stdout) {
		if tty, err := os.OpenFile(terminalDevice, os.O_RDWR, 0); err == nil {
			defer tty.Close()
			cmd.Stdin = tty
			cmd.Stdout = tty
		}
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
