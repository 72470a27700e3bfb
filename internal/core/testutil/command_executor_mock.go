package testutil

import (
	"context"
	"errors"
)

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
type MockCommandExecutor struct {
	RunFunc func(ctx context.Context, name string, args ...string) error
	Calls   [][]string
}

// Run records the call and invokes the mock RunFunc.
func (m *MockCommandExecutor) Run(ctx context.Context, name string, args ...string) error {
	m.Calls = append(m.Calls, append([]string{name}, args...))
	if m.RunFunc != nil {
		return m.RunFunc(ctx, name, args...)
	}
	return errors.New("MockCommandExecutor.RunFunc not implemented")
}
