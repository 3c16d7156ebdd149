// Package mocks provides mock implementations for testing.
package mocks

import (
	"dominicbreuker/helloworld/pkg/config"
	"fmt"
	"sync"
)

// MockPrintln provides a mock implementation of the println dependency.
// It records the arguments of every call instead of writing to a real
// output stream, so tests can assert on what the program emitted.
type MockPrintln struct {
	mu    sync.Mutex
	calls [][]interface{}
}

// NewMockPrintln creates a new mock println recorder with no calls.
func NewMockPrintln() *MockPrintln {
	return &MockPrintln{}
}

// Func returns a config.PrintlnFunc that records each call on the mock
// (used by the dependency injection). The returned byte count matches
// what fmt.Println would have written.
func (m *MockPrintln) Func() config.PrintlnFunc {
	return func(a ...interface{}) (int, error) {
		m.mu.Lock()
		defer m.mu.Unlock()

		args := make([]interface{}, len(a))
		copy(args, a)
		m.calls = append(m.calls, args)

		return len(fmt.Sprintln(a...)), nil
	}
}

// CallCount returns the number of calls recorded so far.
func (m *MockPrintln) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a copy of the arguments of all recorded calls, in order.
func (m *MockPrintln) Calls() [][]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([][]interface{}, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// LastCall returns the arguments of the most recent call, or nil if the
// mock has not been called.
func (m *MockPrintln) LastCall() []interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.calls) == 0 {
		return nil
	}
	return m.calls[len(m.calls)-1]
}
