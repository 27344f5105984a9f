package stream

import (
	"sync"
)

// RingBuffer keeps the last size values added. It is safe for concurrent use.
type RingBuffer[T any] struct {
	mu     sync.Mutex
	buffer []T
	next   int
	full   bool
}

func NewRingBuffer[T any](size int) *RingBuffer[T] {
	if size < 1 {
		size = 1
	}
	return &RingBuffer[T]{buffer: make([]T, size)}
}

// Add inserts a value, overwriting the oldest once full.
func (rb *RingBuffer[T]) Add(value T) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.buffer[rb.next] = value
	rb.next = (rb.next + 1) % len(rb.buffer)
	if rb.next == 0 {
		rb.full = true
	}
}

func (rb *RingBuffer[T]) len() int {
	if rb.full {
		return len(rb.buffer)
	}
	return rb.next
}

func (rb *RingBuffer[T]) Len() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.len()
}

// Get returns the values oldest first.
func (rb *RingBuffer[T]) Get() []T {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	n := rb.len()
	out := make([]T, 0, n)
	start := (rb.next - n + len(rb.buffer)) % len(rb.buffer)
	for i := 0; i < n; i++ {
		out = append(out, rb.buffer[(start+i)%len(rb.buffer)])
	}
	return out
}

// Last returns the newest value, or the zero value if empty.
func (rb *RingBuffer[T]) Last() T {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	var zero T
	if rb.len() == 0 {
		return zero
	}
	return rb.buffer[(rb.next-1+len(rb.buffer))%len(rb.buffer)]
}
