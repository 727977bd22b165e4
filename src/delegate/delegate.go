// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package delegate

import (
	"github.com/H0llyW00dzZ/move-only-buffer/src/internal/mem/ownbuf"
)

// Delegate is a stored callable that exclusively owns its captured payload.
//
// A plain closure over a *ownbuf.Buffer captures a reference, which leaves
// the originating scope free to keep using (or release) the buffer; nothing
// in the closure states that ownership moved. Delegate makes the capture an
// ownership transfer: Bind spends an Owned token, so after binding, the
// delegate holds the only live handle to the region.
type Delegate struct {
	buf *ownbuf.Buffer
	fn  func(*ownbuf.Buffer) error
}

// Bind adopts the payload behind o and pairs it with fn. The originating
// buffer is already emptied by the Move that minted o, so the delegate
// outliving the originating scope is safe by construction.
func Bind(o ownbuf.Owned, fn func(*ownbuf.Buffer) error) *Delegate {
	return &Delegate{buf: o.Take(), fn: fn}
}

// Invoke runs the bound function against the captured payload. It may be
// called any number of times while the delegate holds the payload; after
// Release it fails with [ownbuf.ErrUseAfterMove].
func (d *Delegate) Invoke() error {
	if d.buf == nil {
		return ownbuf.ErrUseAfterMove
	}
	return d.fn(d.buf)
}

// Release frees the captured payload exactly once. Further Release calls are
// no-ops.
func (d *Delegate) Release() {
	if d.buf == nil {
		return
	}
	d.buf.Release()
	d.buf = nil
}
