// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package alloc

import (
	"sync"

	"github.com/cznic/memory"
)

// Manual allocates regions outside the Go heap using [memory.Allocator].
// Unlike the heap and pooled backends, a region from this allocator leaks for
// the lifetime of the process if it is never released, which makes it the
// most honest backend for demonstrating ownership transfer.
//
// The underlying allocator is not goroutine safe, so every call is serialized
// behind a mutex.
type Manual struct {
	mu    sync.Mutex
	inner memory.Allocator
}

// NewManual returns a manually managed allocator.
func NewManual() *Manual { return &Manual{} }

// Allocate claims n zeroed bytes from the manual allocator.
func (m *Manual) Allocate(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.inner.Calloc(n)
}

// Release returns a region to the manual allocator.
func (m *Manual) Release(b []byte) {
	if len(b) == 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	_ = m.inner.Free(b)
}

// Close releases every region still held by the allocator. After Close the
// allocator must not be used again.
func (m *Manual) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.inner.Close()
}
