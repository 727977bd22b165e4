// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ownbuf

import (
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/move-only-buffer/src/internal/mem/alloc"
)

var (
	// ErrUseAfterMove indicates a read or write through a buffer whose
	// ownership has already been moved away, or through a spent Owned token.
	ErrUseAfterMove = errors.New("ownbuf: use after move")

	// ErrSizeNegative indicates a construction request for a negative number of bytes.
	ErrSizeNegative = errors.New("ownbuf: negative size")

	// ErrAllocFailed indicates that the allocation backend could not supply a region.
	ErrAllocFailed = errors.New("ownbuf: allocation failed")
)

// noCopy makes `go vet -copylocks` flag any copy of a struct embedding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer exclusively owns a contiguous byte region.
//
// A Buffer is in one of two states: valid, holding a region of Len() bytes,
// or emptied after its ownership moved away. An emptied Buffer is safe to
// Release or to re-populate through Adopt, but reads fail with
// ErrUseAfterMove.
//
// A Buffer must not be copied by value and is not safe for concurrent use;
// exclusive ownership makes sharing a single Buffer across goroutines a
// design error rather than a locking problem.
type Buffer struct {
	noCopy noCopy

	data  []byte
	size  int
	alloc alloc.Allocator
}

// Option configures buffer construction.
type Option func(*options)

type options struct {
	alloc alloc.Allocator
}

// WithAllocator selects the allocation backend for a new buffer. The default
// is the garbage-collected heap backend.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) { o.alloc = a }
}

// New allocates a buffer of exactly n uninitialized bytes.
func New(n int, opts ...Option) (*Buffer, error) {
	if n < 0 {
		return nil, ErrSizeNegative
	}

	o := options{alloc: alloc.Heap()}
	for _, opt := range opts {
		opt(&o)
	}

	data, err := o.alloc.Allocate(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocFailed, err)
	}

	return &Buffer{data: data, size: n, alloc: o.alloc}, nil
}

// NewString allocates a buffer of len(s) bytes and copies s into it.
func NewString(s string, opts ...Option) (*Buffer, error) {
	b, err := New(len(s), opts...)
	if err != nil {
		return nil, err
	}

	copy(b.data, s)
	return b, nil
}

// Valid reports whether the buffer currently owns a region. A valid buffer
// may still be empty (zero bytes); an invalid one has been emptied by a move.
func (b *Buffer) Valid() bool { return b.data != nil }

// Len returns the number of owned bytes, or zero for an emptied buffer.
func (b *Buffer) Len() int { return b.size }

// Text returns an independent copy of the owned bytes interpreted as text.
// It never consumes the buffer and may be called any number of times while
// the buffer is valid.
func (b *Buffer) Text() (string, error) {
	if !b.Valid() {
		return "", ErrUseAfterMove
	}

	return string(b.data[:b.size]), nil
}

// MustText is like Text but panics on an emptied buffer. It exists for the
// demonstration programs where a move bug should abort loudly.
func (b *Buffer) MustText() string {
	s, err := b.Text()
	if err != nil {
		panic(err)
	}
	return s
}

// Bytes returns an independent copy of the owned bytes.
func (b *Buffer) Bytes() ([]byte, error) {
	if !b.Valid() {
		return nil, ErrUseAfterMove
	}

	out := make([]byte, b.size)
	copy(out, b.data[:b.size])
	return out, nil
}

// Fill overwrites every owned byte with c. Mutation through a live handle
// leaves ownership untouched.
func (b *Buffer) Fill(c byte) error {
	if !b.Valid() {
		return ErrUseAfterMove
	}

	for i := range b.data[:b.size] {
		b.data[i] = c
	}
	return nil
}

// Probe reports the value category of the receiver. On a named, still-owned
// Buffer that is always the persistent category; the expiring counterpart
// lives on Owned, minted by Move, so the category is stated by the caller's
// choice of handle rather than guessed.
func (b *Buffer) Probe() string { return "probe: receiver is " + Persistent.String() }

// Move relinquishes ownership into an Owned token and empties the receiver.
// It is O(1), cannot fail, and never touches the region's contents.
//
// Move marks intent at the call site: pass the token to a consuming API, or
// Take it to finish a transfer-construction. Do not wrap a function's own
// fresh return value in Move; returning the *Buffer directly already lets the
// caller decide, and the extra hop only obscures the handoff.
func (b *Buffer) Move() Owned {
	st := &ownedState{data: b.data, size: b.size, alloc: b.alloc, origin: b}
	b.data, b.size = nil, 0
	return Owned{st: st}
}

// Adopt completes a transfer-assignment: the receiver releases whatever it
// currently owns, then takes over the token's region. Adopting a token minted
// from the receiver itself, while the receiver is still in the emptied state
// that Move left behind, restores it unchanged; the receiver's own region is
// never released on that path.
func (b *Buffer) Adopt(o Owned) {
	st := o.st
	if st == nil || st.consumed {
		panic(ErrUseAfterMove)
	}
	st.consumed = true

	// Self-transfer guard: a genuine b.Adopt(b.Move()) always finds the
	// receiver emptied by the Move, so releasing here would be a no-op and
	// the region must be restored instead. A stale token from an earlier
	// Move does not qualify once the receiver owns a region again; that
	// region has to be released like any other destination's.
	if st.origin == b && !b.Valid() {
		b.data, b.size = st.data, st.size
		return
	}

	b.Release()
	b.data, b.size, b.alloc = st.data, st.size, st.alloc
}

// Release frees the owned region exactly once. Releasing an emptied buffer is
// a no-op, so a buffer whose ownership moved away is always safe to release.
func (b *Buffer) Release() {
	if !b.Valid() {
		return
	}

	if b.alloc != nil {
		b.alloc.Release(b.data)
	}
	b.data, b.size = nil, 0
}
