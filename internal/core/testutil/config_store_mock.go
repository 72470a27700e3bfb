package testutil

import (
	"errors"

	"github.com/AntonioJCosta/gogo/internal/core/domain/alias"
	"github.com/AntonioJCosta/gogo/internal/core/domain/paths"
)

// MockConfigStore is a mock implementation of ports.ConfigStore for testing.
type MockConfigStore struct {
	EnsureConfigDirFunc  func() error
	LoadOrInitializeFunc func() ([]string, error)
	AppendAliasFunc      func(newAlias alias.Alias) error
	PathsValue           paths.Paths
}

func (m *MockConfigStore) EnsureConfigDir() error {
	if m.EnsureConfigDirFunc != nil {
		return m.EnsureConfigDirFunc()
	}
	return nil
}

func (m *MockConfigStore) LoadOrInitialize() ([]string, error) {
	if m.LoadOrInitializeFunc != nil {
		return m.LoadOrInitializeFunc()
	}
	return nil, errors.New("MockConfigStore: LoadOrInitializeFunc not implemented")
}

func (m *MockConfigStore) AppendAlias(newAlias alias.Alias) error {
	if m.AppendAliasFunc != nil {
		return m.AppendAliasFunc(newAlias)
	}
	return errors.New("MockConfigStore: AppendAliasFunc not implemented")
}

func (m *MockConfigStore) Paths() paths.Paths {
	return m.PathsValue
}
