package oscommand

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/gogo/internal/core/ports"
)

// DefaultEditor is used when neither $EDITOR nor the settings name an editor.
const DefaultEditor = "vi"

// EditorLauncher opens files in the user's editor.
type EditorLauncher struct {
	executor   ports.CommandExecutor
	getenv     func(string) string
	configured string
	notify     io.Writer
}

// NewEditorLauncher creates a new EditorLauncher. $EDITOR (read through getenv)
// takes precedence over configured; notify receives the fallback notice.
func NewEditorLauncher(executor ports.CommandExecutor, getenv func(string) string, configured string, notify io.Writer) ports.Editor {
	if executor == nil {
		panic("commandExecutor cannot be nil")
	}
	return &EditorLauncher{executor: executor, getenv: getenv, configured: configured, notify: notify}
}

// Edit runs the editor on path and blocks until it exits. The editor value may
// carry arguments, e.g. "code --wait".
func (l *EditorLauncher) Edit(ctx context.Context, path string) error {
	editor := strings.TrimSpace(l.getenv("EDITOR"))
	if editor == "" {
		editor = strings.TrimSpace(l.configured)
	}
	if editor == "" {
		fmt.Fprintln(l.notify, "No $EDITOR set. Trying vi.")
		editor = DefaultEditor
	}

	parts := strings.Fields(editor)
	if err := l.executor.Run(ctx, parts[0], append(parts[1:], path)...); err != nil {
		return fmt.Errorf("failed to edit %s: %w", path, err)
	}
	return nil
}
