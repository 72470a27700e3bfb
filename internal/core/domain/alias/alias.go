/*
Package alias defines the core domain entities for directory bookmarks.
*/
package alias

import (
	"sort"
	"strings"
)

// DefaultName is the alias used when gogo is invoked without arguments.
const DefaultName = "default"

/*
Alias represents a single bookmark, consisting of a short name and the
raw target it points at (a path or an ssh:// address). This is a core domain entity.
*/
type Alias struct {
	Name   string
	Target string
}

// Set maps alias names to their raw targets. Lookups are by exact name.
type Set map[string]string

// Sorted returns the aliases of the set ordered lexicographically by name.
func (s Set) Sorted() []Alias {
	aliases := make([]Alias, 0, len(s))
	for name, target := range s {
		aliases = append(aliases, Alias{Name: name, Target: target})
	}
	sort.Slice(aliases, func(i, j int) bool {
		return aliases[i].Name < aliases[j].Name
	})
	return aliases
}

// reservedNames are read as options by the dispatcher and never reach the resolver.
var reservedNames = map[string]bool{
	"-h": true, "--help": true,
	"-v": true, "--version": true,
	"-l": true, "--ls": true,
	"-e": true, "--edit": true,
	"-a": true,
}

// IsValidName reports whether name can be written to the config file and read
// back as the same alias. It rejects empty names, names containing '=' or a line
// break, names starting with '#' (read as a comment), names with surrounding
// whitespace (trimmed by the parser) and the option words.
func IsValidName(name string) bool {
	switch {
	case name == "":
		return false
	case strings.ContainsAny(name, "=\n\r"):
		return false
	case strings.HasPrefix(name, "#"):
		return false
	case strings.TrimSpace(name) != name:
		return false
	default:
		return !reservedNames[name]
	}
}
