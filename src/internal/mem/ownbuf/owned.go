// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ownbuf

import (
	"github.com/H0llyW00dzZ/move-only-buffer/src/internal/mem/alloc"
)

// ValueCategory states whether a handle refers to a persistent (named, still
// referenced) value or an expiring one (mid-transfer, about to be discarded).
// The caller declares the category by choosing a handle type; it is never
// detected automatically.
type ValueCategory uint8

const (
	// Persistent is a named value not eligible for resource adoption
	// without an explicit move.
	Persistent ValueCategory = iota
	// Expiring is a value whose resources may be adopted without copying.
	Expiring
)

// String returns a human-readable representation of the value category.
func (v ValueCategory) String() string {
	switch v {
	case Persistent:
		return "persistent (l-value)"
	case Expiring:
		return "expiring (r-value)"
	default:
		return "unknown"
	}
}

// View is the read-only call convention: both persistent buffers and
// explicitly moved tokens bind to it, and neither is consumed by a read.
type View interface {
	Text() (string, error)
	Len() int
}

var (
	_ View = (*Buffer)(nil)
	_ View = Owned{}
)

// ownedState is shared by every copy of one Owned token so that spending the
// token through any copy invalidates all of them.
type ownedState struct {
	data     []byte
	size     int
	alloc    alloc.Allocator
	origin   *Buffer
	consumed bool
}

// Owned is the explicit transfer marker: it exists only between a Move and
// the single operation that adopts the region (Take, Buffer.Adopt, or a
// consuming API). A token can be spent at most once; spending it again
// panics with ErrUseAfterMove. Reads through the token are permitted and do
// not spend it.
type Owned struct {
	st *ownedState
}

// live returns the token state if it is still spendable.
func (o Owned) live() *ownedState {
	if o.st == nil || o.st.consumed {
		return nil
	}
	return o.st
}

// Take completes a transfer-construction: it adopts the region into a fresh
// Buffer and spends the token. O(1), cannot fail on a live token.
func (o Owned) Take() *Buffer {
	st := o.live()
	if st == nil {
		panic(ErrUseAfterMove)
	}
	st.consumed = true

	return &Buffer{data: st.data, size: st.size, alloc: st.alloc}
}

// Discard releases the region held by an unspent token. It exists for paths
// that mint a token and then decide not to hand it anywhere.
func (o Owned) Discard() {
	st := o.live()
	if st == nil {
		return
	}
	st.consumed = true

	if st.alloc != nil && st.data != nil {
		st.alloc.Release(st.data)
	}
}

// Text returns an independent copy of the bytes behind the token without
// spending it; the read-only convention accepts expiring values.
func (o Owned) Text() (string, error) {
	st := o.live()
	if st == nil || st.data == nil {
		return "", ErrUseAfterMove
	}

	return string(st.data[:st.size]), nil
}

// Len returns the number of bytes behind the token, or zero once spent.
func (o Owned) Len() int {
	st := o.live()
	if st == nil {
		return 0
	}
	return st.size
}

// Probe reports the value category of the receiver: a token always stands
// for an expiring value. Probing does not spend the token.
func (o Owned) Probe() string { return "probe: receiver is " + Expiring.String() }
