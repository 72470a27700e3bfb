package ports

import "github.com/AntonioJCosta/gogo/internal/core/domain/alias"

// ConfigParser turns raw config lines into an alias set.
type ConfigParser interface {
	Parse(lines []string) (alias.Set, error)
}
