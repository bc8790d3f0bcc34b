package mocks

import "context"

// MockTheatreLocker runs the protected function inline. Tests that need a
// lock failure set Err.
type MockTheatreLocker struct {
	Err error
}

func (m *MockTheatreLocker) WithLock(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	if m.Err != nil {
		return m.Err
	}

	return fn(ctx)
}
