package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockModel is the model ID reported by MockProvider.
const MockModel = "mock"

// MockReply is one scripted answer: JSON content, or an error when Err is set.
type MockReply struct {
	JSON  string
	Usage Usage
	Err   error
}

// MockProvider replays scripted replies in order and records each request.
// Without replies left it reports Unavailable, so an unconfigured install
// always falls back to the default explanation text.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockReply
	Calls   []Request
}

// NewMockProvider creates a MockProvider that answers with replies.
func NewMockProvider(replies ...MockReply) *MockProvider {
	return &MockProvider{replies: replies}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if len(m.replies) == 0 {
		return nil, &Error{Kind: Unavailable}
	}

	r := m.replies[0]
	m.replies = m.replies[1:]
	if r.Err != nil {
		return nil, r.Err
	}
	return &Response{Content: json.RawMessage(r.JSON), Usage: r.Usage, Model: MockModel}, nil
}

func (m *MockProvider) ModelID() string { return MockModel }

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
