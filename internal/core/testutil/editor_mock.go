package testutil

import "context"

// MockEditor is a mock implementation of ports.Editor that records the edited paths.
type MockEditor struct {
	EditFunc func(ctx context.Context, path string) error
	Edited   []string
}

// Edit records path and calls the mock EditFunc.
func (m *MockEditor) Edit(ctx context.Context, path string) error {
	m.Edited = append(m.Edited, path)
	if m.EditFunc != nil {
		return m.EditFunc(ctx, path)
	}
	return nil
}
