package aliasmanagement

import (
	"fmt"
	"log/slog"

	"github.com/AntonioJCosta/gogo/internal/core/domain/alias"
	"github.com/AntonioJCosta/gogo/internal/core/domain/failure"
	"github.com/AntonioJCosta/gogo/internal/core/ports"
)

type service struct {
	resolver ports.AliasResolver
	store    ports.ConfigStore
	logger   *slog.Logger
}

// NewService creates a new alias management service.
// It panics if the resolver or store is nil.
func NewService(resolver ports.AliasResolver, store ports.ConfigStore, logger *slog.Logger) ports.AliasManagementService {
	if resolver == nil {
		panic("aliasResolver cannot be nil")
	}
	if store == nil {
		panic("configStore cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &service{resolver: resolver, store: store, logger: logger}
}

// AddAlias bookmarks dir under name.
// It returns *failure.InvalidAliasError for names the config format cannot hold
// and *failure.AliasExistsError when name is already defined.
func (s *service) AddAlias(name, dir string) error {
	if !alias.IsValidName(name) {
		return &failure.InvalidAliasError{Alias: name}
	}

	current, err := s.resolver.Load()
	if err != nil {
		return err
	}
	if _, exists := current[name]; exists {
		return &failure.AliasExistsError{Alias: name}
	}

	if err := s.store.AppendAlias(alias.Alias{Name: name, Target: dir}); err != nil {
		return fmt.Errorf("failed to add alias '%s': %w", name, err)
	}
	s.logger.Info("added alias", "alias", name, "dir", dir)
	return nil
}

// ListAliases retrieves all aliases from the config file, sorted by name.
func (s *service) ListAliases() ([]alias.Alias, error) {
	current, err := s.resolver.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to list aliases: %w", err)
	}
	return current.Sorted(), nil
}
