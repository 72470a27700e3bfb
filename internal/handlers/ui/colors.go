package ui

import (
	"io"
	"os"

	"github.com/AntonioJCosta/gogo/internal/core/domain/settings"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// Palette colors user-facing messages written to stderr. Stdout never carries
// color because it is evaluated by the wrapping shell.
type Palette struct {
	enabled bool
}

// NewPalette decides whether w gets color. mode is one of the settings color
// modes; "auto" colors only terminals.
func NewPalette(mode string, w io.Writer) Palette {
	switch mode {
	case settings.ColorAlways:
		return Palette{enabled: true}
	case settings.ColorNever:
		return Palette{enabled: false}
	}
	f, ok := w.(*os.File)
	if !ok {
		return Palette{enabled: false}
	}
	return Palette{enabled: term.IsTerminal(int(f.Fd()))}
}

func (p Palette) paint(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if p.enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// General Purpose Colors
func (p Palette) Error(s string) string   { return p.paint(s, color.FgRed) }
func (p Palette) Warning(s string) string { return p.paint(s, color.FgYellow) }
