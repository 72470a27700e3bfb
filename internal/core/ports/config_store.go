package ports

import (
	"github.com/AntonioJCosta/gogo/internal/core/domain/alias"
	"github.com/AntonioJCosta/gogo/internal/core/domain/paths"
)

/*
ConfigStore defines the interface for reading from and writing to the gogo
config file. This is a driven port, implemented by a repository adapter that
owns the on-disk layout.
*/
type ConfigStore interface {
	// EnsureConfigDir creates the config directory if it is missing.
	EnsureConfigDir() error

	/*
	   LoadOrInitialize returns the raw lines of the config file. A missing file
	   is created from the default template, and the template lines are returned.
	*/
	LoadOrInitialize() ([]string, error)

	// AppendAlias appends a single "name = target" line to the config file.
	AppendAlias(newAlias alias.Alias) error

	// Paths returns the locations the store works with.
	Paths() paths.Paths
}
