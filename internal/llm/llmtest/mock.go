// Package llmtest provides test doubles for llm.Client.
package llmtest

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClient is a testify mock of llm.Client. Provider is not mocked.
type MockClient struct {
	mock.Mock
	Name string
}

func (m *MockClient) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)

	return args.String(0), args.Error(1)
}

func (m *MockClient) Provider() string {
	if m.Name == "" {
		return "Mock"
	}
	return m.Name
}
