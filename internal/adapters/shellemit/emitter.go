package shellemit

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/gogo/internal/core/domain/alias"
	"github.com/AntonioJCosta/gogo/internal/core/domain/target"
	"github.com/AntonioJCosta/gogo/internal/core/ports"
	"github.com/alessio/shellescape"
	"github.com/olekukonko/tablewriter"
)

const (
	listingHeader   = "Current gogo configuration (sorted alphabetically):"
	noConfiguration = "  [ NO CONFIGURATION ] "
	// listingIndent widens the right-justified alias column by two spaces.
	listingIndent = "  "
)

// Emitter writes shell-evaluable text to out and plain notices to errOut.
type Emitter struct {
	out        io.Writer
	errOut     io.Writer
	sshCommand string
}

// NewEmitter creates a new Emitter. sshCommand is the client used for remote
// targets; empty means "ssh".
func NewEmitter(out, errOut io.Writer, sshCommand string) ports.CommandEmitter {
	if sshCommand == "" {
		sshCommand = "ssh"
	}
	return &Emitter{out: out, errOut: errOut, sshCommand: sshCommand}
}

// Emit writes the single actionable command for t.
func (e *Emitter) Emit(t target.Target) error {
	switch v := t.(type) {
	case target.LocalPath:
		return e.call("cd " + shellescape.Quote(v.Path))
	case target.RemoteTarget:
		return e.call(e.remoteCommand(v))
	default:
		return fmt.Errorf("unsupported target type %T", t)
	}
}

// Echo writes text as echo statements, one per line.
func (e *Emitter) Echo(text string) error {
	for _, line := range strings.Split(text, "\n") {
		if _, err := fmt.Fprintf(e.out, "echo %s;\n", shellescape.Quote(line)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// PrintConfig echoes the aliases as a table with right-justified names.
// With no aliases it writes a notice to errOut instead.
func (e *Emitter) PrintConfig(aliases []alias.Alias) error {
	if err := e.Echo(listingHeader); err != nil {
		return err
	}
	if len(aliases) == 0 {
		_, err := fmt.Fprintln(e.errOut, noConfiguration)
		return err
	}

	for _, row := range renderListing(aliases) {
		if err := e.Echo(row); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) call(cmd string) error {
	if _, err := fmt.Fprintf(e.out, "%s;\n", cmd); err != nil {
		return fmt.Errorf("failed to write command: %w", err)
	}
	return nil
}

// remoteCommand builds "<ssh> <server> -t '<cd dir; shell>'". The shell token is
// left unquoted inside the remote command so the remote side expands ${SHELL}.
func (e *Emitter) remoteCommand(t target.RemoteTarget) string {
	remote := t.Shell
	if t.Directory != "" {
		remote = fmt.Sprintf("cd %s; %s", quoteRemoteDir(t.Directory), t.Shell)
	}
	return fmt.Sprintf("%s %s -t %s", e.sshCommand, shellescape.Quote(t.Server), shellescape.Quote(remote))
}

// quoteRemoteDir quotes dir for the remote shell, keeping a leading "~" bare so
// it expands to the remote home directory.
func quoteRemoteDir(dir string) string {
	switch {
	case dir == "~":
		return dir
	case strings.HasPrefix(dir, "~/"):
		return "~/" + shellescape.Quote(dir[2:])
	default:
		return shellescape.Quote(dir)
	}
}

// renderListing lays out "name : target" rows with the name column right-aligned.
func renderListing(aliases []alias.Alias) []string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetRowLine(false)
	table.SetColumnSeparator("")
	table.SetCenterSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding(" ")
	table.SetNoWhiteSpace(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range aliases {
		table.Append([]string{a.Name, ":", a.Target})
	}
	table.Render()

	var rows []string
	for _, line := range strings.Split(buf.String(), "\n") {
		line = strings.TrimRight(line, " ")
		if line == "" {
			continue
		}
		rows = append(rows, listingIndent+line)
	}
	return rows
}
