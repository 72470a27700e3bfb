package ports

import "github.com/AntonioJCosta/gogo/internal/core/domain/alias"

// AliasManagementService defines the contract for managing bookmarks.
type AliasManagementService interface {
	// AddAlias bookmarks dir under name. It fails if name is invalid or already defined.
	AddAlias(name, dir string) error

	// ListAliases returns all aliases from the config file, sorted by name.
	ListAliases() ([]alias.Alias, error)
}
