package mocks

import (
	"fmt"
	"sync"

	"github.com/mcoot/royalsquare/internal/dependencies/random"
)

// MockRandom hands out queued strings. Once the queue is empty it returns
// MOCK0001, MOCK0002, ... so unqueued game ids never collide.
type MockRandom struct {
	mu       sync.Mutex
	queue    []string
	fallback int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom with an empty queue
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// QueueString adds values to be returned by String, in order
func (r *MockRandom) QueueString(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, values...)
}

// String returns the next queued value
func (r *MockRandom) String(int, string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queue) > 0 {
		next := r.queue[0]
		r.queue = r.queue[1:]
		return next
	}
	r.fallback++
	return fmt.Sprintf("MOCK%04d", r.fallback)
}

// Reset drops queued values and restarts the fallback sequence
func (r *MockRandom) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = nil
	r.fallback = 0
}
