package provider

import (
	"context"
	"sync"

	"github.com/abhisek/pathway/internal/roadmap"
)

// MockResponse is a canned response for the MockProvider. Fetch calls
// use Nodes; progress calls use Ack.
type MockResponse struct {
	Nodes []roadmap.Node
	Ack   *Ack
	Err   error
}

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu         sync.Mutex
	responses  []MockResponse
	FetchCalls int
	Updates    []ProgressUpdate
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// FetchRoadmap returns the next canned response or ErrUnavailable if the
// queue is empty.
func (m *MockProvider) FetchRoadmap(_ context.Context) ([]roadmap.Node, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FetchCalls++
	resp, ok := m.next()
	if !ok {
		return nil, &ErrUnavailable{}
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	return resp.Nodes, nil
}

// UpdateProgress returns the next canned response or ErrUnavailable if
// the queue is empty. A response without an Ack acknowledges with 200.
func (m *MockProvider) UpdateProgress(_ context.Context, update ProgressUpdate) (*Ack, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Updates = append(m.Updates, update)
	resp, ok := m.next()
	if !ok {
		return nil, &ErrUnavailable{}
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	if resp.Ack == nil {
		return &Ack{StatusCode: 200}, nil
	}
	return resp.Ack, nil
}

// Name returns "mock".
func (m *MockProvider) Name() string {
	return KindMock
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// UpdateCount returns the number of UpdateProgress calls made.
func (m *MockProvider) UpdateCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Updates)
}

func (m *MockProvider) next() (MockResponse, bool) {
	if len(m.responses) == 0 {
		return MockResponse{}, false
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp, true
}
