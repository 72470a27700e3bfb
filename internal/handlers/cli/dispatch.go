package cli

import (
	"strings"

	"github.com/AntonioJCosta/gogo/internal/core/domain/failure"
)

// Action is what a single gogo invocation asks for.
type Action int

const (
	ActionDefault Action = iota // no arguments: go to the default alias
	ActionChange                // go to Request.Token
	ActionHelp
	ActionVersion
	ActionList
	ActionEdit
	ActionAdd // bookmark the working directory as Request.Token
)

// Request is a parsed command line.
type Request struct {
	Action Action
	Token  string
}

// NormalizeArgs strips surrounding quote characters from every argument. When
// several arguments are given and the first is an alias path (contains '/' and
// is not an option), they are joined back into one token so that
// `gogo proj/My Documents` works without quoting.
func NormalizeArgs(args []string) []string {
	normalized := make([]string, 0, len(args))
	for _, arg := range args {
		normalized = append(normalized, strings.Trim(arg, `"'`))
	}
	if len(normalized) > 1 && !strings.HasPrefix(normalized[0], "-") && strings.Contains(normalized[0], "/") {
		return []string{strings.Join(normalized, " ")}
	}
	return normalized
}

// ParseArgs maps normalized arguments to a Request. It is a pure switch on the
// argument count and values.
func ParseArgs(args []string) (Request, error) {
	switch len(args) {
	case 0:
		return Request{Action: ActionDefault}, nil
	case 1:
		switch arg := args[0]; arg {
		case "-h", "--help":
			return Request{Action: ActionHelp}, nil
		case "-v", "--version":
			return Request{Action: ActionVersion}, nil
		case "-l", "--ls":
			return Request{Action: ActionList}, nil
		case "-e", "--edit":
			return Request{Action: ActionEdit}, nil
		case "-a":
			return Request{}, failure.ErrMissingAlias
		default:
			return Request{Action: ActionChange, Token: arg}, nil
		}
	case 2:
		if args[0] == "-a" {
			return Request{Action: ActionAdd, Token: args[1]}, nil
		}
		return Request{}, &failure.BadInvocationError{ArgCount: 2}
	default:
		return Request{}, &failure.BadInvocationError{ArgCount: len(args)}
	}
}
