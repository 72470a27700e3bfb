package testutil

import (
	"errors"

	"github.com/AntonioJCosta/gogo/internal/core/domain/alias"
	"github.com/AntonioJCosta/gogo/internal/core/domain/target"
)

// MockAliasResolver is a mock implementation of ports.AliasResolver.
type MockAliasResolver struct {
	LoadFunc           func() (alias.Set, error)
	SplitFunc          func(token string, set alias.Set) (string, string, error)
	ResolveFunc        func(token string) (target.Target, error)
	ResolveDefaultFunc func() (target.Target, error)
}

// Load calls the mock LoadFunc.
func (m *MockAliasResolver) Load() (alias.Set, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return nil, errors.New("MockAliasResolver.LoadFunc not implemented")
}

// Split calls the mock SplitFunc.
func (m *MockAliasResolver) Split(token string, set alias.Set) (string, string, error) {
	if m.SplitFunc != nil {
		return m.SplitFunc(token, set)
	}
	return "", "", errors.New("MockAliasResolver.SplitFunc not implemented")
}

// Resolve calls the mock ResolveFunc.
func (m *MockAliasResolver) Resolve(token string) (target.Target, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(token)
	}
	return nil, errors.New("MockAliasResolver.ResolveFunc not implemented")
}

// ResolveDefault calls the mock ResolveDefaultFunc.
func (m *MockAliasResolver) ResolveDefault() (target.Target, error) {
	if m.ResolveDefaultFunc != nil {
		return m.ResolveDefaultFunc()
	}
	return nil, errors.New("MockAliasResolver.ResolveDefaultFunc not implemented")
}
