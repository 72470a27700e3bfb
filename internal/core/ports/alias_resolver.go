package ports

import (
	"github.com/AntonioJCosta/gogo/internal/core/domain/alias"
	"github.com/AntonioJCosta/gogo/internal/core/domain/target"
)

// AliasResolver defines the contract for turning user tokens into targets.
type AliasResolver interface {
	// Load reads and parses the config file, creating it when missing.
	Load() (alias.Set, error)

	// Split looks token up in set. For "alias/child/path" tokens that are not
	// themselves aliases it returns the target of "alias" and "child/path" as remainder.
	Split(token string, set alias.Set) (value string, remainder string, err error)

	// Resolve loads the config and resolves token to its final target.
	Resolve(token string) (target.Target, error)

	// ResolveDefault resolves the "default" alias, or the home directory when it is absent.
	ResolveDefault() (target.Target, error)
}
