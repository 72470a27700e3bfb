package configparser

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/gogo/internal/core/domain/alias"
	"github.com/AntonioJCosta/gogo/internal/core/domain/failure"
	"github.com/AntonioJCosta/gogo/internal/core/ports"
)

// valueCutset is stripped from both ends of a value, quotes included.
const valueCutset = "\"' \t"

// Parser reads the "alias = target" config format.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() ports.ConfigParser {
	return &Parser{}
}

// Parse builds an alias set from config lines. Blank lines and lines starting
// with '#' are skipped; later definitions of the same alias replace earlier ones.
// The first malformed line is reported as a *failure.ConfigParseError.
func (p *Parser) Parse(lines []string) (alias.Set, error) {
	set := make(alias.Set)
	for lineNo, line := range lines {
		name, value, isEntry, err := parseLine(line)
		if err != nil {
			return nil, &failure.ConfigParseError{Line: lineNo, Content: strings.TrimSpace(line)}
		}
		if isEntry {
			set[name] = value
		}
	}
	return set, nil
}

func parseLine(line string) (name string, value string, isEntry bool, err error) {
	trimmedLine := strings.TrimSpace(line)
	if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
		return "", "", false, nil
	}

	key, rawValue, found := strings.Cut(trimmedLine, "=")
	if !found {
		return "", "", false, fmt.Errorf("missing '=' separator")
	}

	return strings.TrimSpace(key), strings.Trim(rawValue, valueCutset), true, nil
}
