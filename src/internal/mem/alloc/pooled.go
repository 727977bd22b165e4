// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package alloc

import (
	"sync"

	"github.com/valyala/bytebufferpool"
)

// pooled recycles regions through a [bytebufferpool.Pool]. Released regions go
// back to the pool, so a later Allocate may hand out memory that still carries
// old bytes; the buffer layer treats freshly allocated regions as
// uninitialized, which makes this safe.
type pooled struct {
	pool bytebufferpool.Pool

	mu   sync.Mutex
	live map[*byte]*bytebufferpool.ByteBuffer
}

// Pooled returns an allocator backed by a dedicated [bytebufferpool.Pool].
func Pooled() Allocator {
	return &pooled{live: make(map[*byte]*bytebufferpool.ByteBuffer)}
}

// Allocate draws a pooled buffer and slices it to exactly n bytes.
func (p *pooled) Allocate(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}

	bb := p.pool.Get()
	if cap(bb.B) < n {
		bb.B = make([]byte, n)
	}
	bb.B = bb.B[:n]
	region := bb.B[:n:n]

	p.mu.Lock()
	p.live[&region[0]] = bb
	p.mu.Unlock()

	return region, nil
}

// Release resets the backing buffer and returns it to the pool. The reset
// prevents old contents from leaking into unrelated future regions that grow
// the buffer.
func (p *pooled) Release(b []byte) {
	if len(b) == 0 {
		return
	}

	p.mu.Lock()
	bb, ok := p.live[&b[0]]
	if ok {
		delete(p.live, &b[0])
	}
	p.mu.Unlock()

	if ok {
		bb.Reset()
		p.pool.Put(bb)
	}
}
