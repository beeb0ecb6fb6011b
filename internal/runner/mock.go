package runner

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRunner is a testify mock for Runner
type MockRunner struct {
	mock.Mock
}

// Run implements Runner.
func (m *MockRunner) Run(ctx context.Context, cmd Command) (*Result, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Result), args.Error(1)
}
