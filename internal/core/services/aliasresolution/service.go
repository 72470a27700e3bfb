package aliasresolution

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/AntonioJCosta/gogo/internal/core/domain/alias"
	"github.com/AntonioJCosta/gogo/internal/core/domain/failure"
	"github.com/AntonioJCosta/gogo/internal/core/domain/target"
	"github.com/AntonioJCosta/gogo/internal/core/ports"
)

type service struct {
	store  ports.ConfigStore
	parser ports.ConfigParser
	logger *slog.Logger
}

// NewService creates a new alias resolution service.
// It panics if store or parser is nil.
func NewService(store ports.ConfigStore, parser ports.ConfigParser, logger *slog.Logger) ports.AliasResolver {
	if store == nil {
		panic("configStore cannot be nil")
	}
	if parser == nil {
		panic("configParser cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &service{store: store, parser: parser, logger: logger}
}

// Load ensures the config directory and file exist and parses the file.
func (s *service) Load() (alias.Set, error) {
	if err := s.store.EnsureConfigDir(); err != nil {
		return nil, fmt.Errorf("failed to prepare config directory: %w", err)
	}
	lines, err := s.store.LoadOrInitialize()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	set, err := s.parser.Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.store.Paths().File, err)
	}
	return set, nil
}

// Split implements ports.AliasResolver. An exact match always wins, so aliases
// containing '/' still resolve as a whole.
func (s *service) Split(token string, set alias.Set) (string, string, error) {
	if value, ok := set[token]; ok {
		return value, "", nil
	}

	head, rest, _ := strings.Cut(token, "/")
	value, ok := set[head]
	if !ok {
		return "", "", &failure.AliasNotFoundError{Token: token}
	}
	return value, rest, nil
}

// Resolve implements ports.AliasResolver.
func (s *service) Resolve(token string) (target.Target, error) {
	set, err := s.Load()
	if err != nil {
		return nil, err
	}

	value, remainder, err := s.Split(token, set)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("resolved alias", "token", token, "value", value, "remainder", remainder)

	resolved := target.Join(target.Classify(value, s.store.Paths().Home), remainder)
	return resolved, nil
}

// ResolveDefault implements ports.AliasResolver.
func (s *service) ResolveDefault() (target.Target, error) {
	set, err := s.Load()
	if err != nil {
		return nil, err
	}

	home := s.store.Paths().Home
	value, ok := set[alias.DefaultName]
	if !ok {
		s.logger.Debug("no default alias configured, using home directory", "home", home)
		return target.LocalPath{Path: home}, nil
	}
	return target.Classify(value, home), nil
}
