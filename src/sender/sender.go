// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sender

import (
	"github.com/H0llyW00dzZ/move-only-buffer/src/internal/mem/ownbuf"
	"github.com/H0llyW00dzZ/move-only-buffer/src/logger"
)

// Sender delivers buffer contents through the four call conventions, logging
// one trace line per delivery. The split between deliverShared and
// deliverOwned mirrors a transport facade that reads through a view when it
// must not consume, and adopts the payload when it may.
type Sender struct {
	log logger.Logger
}

// New creates a Sender writing trace lines through log.
func New(log logger.Logger) *Sender { return &Sender{log: log} }

// deliverShared is the non-consuming delivery path.
func (s *Sender) deliverShared(v ownbuf.View) (string, error) {
	text, err := v.Text()
	if err != nil {
		return "", err
	}

	s.log.Printf("deliver (shared view): %s", text)
	return text, nil
}

// deliverOwned is the consuming delivery path: it owns b and releases it.
func (s *Sender) deliverOwned(b *ownbuf.Buffer) (string, error) {
	defer b.Release()

	text, err := b.Text()
	if err != nil {
		return "", err
	}

	s.log.Printf("deliver (adopted): %s", text)
	return text, nil
}

// Send delivers through the read-only convention. Ownership is unaffected,
// and both persistent buffers and moved tokens are accepted.
func (s *Sender) Send(v ownbuf.View) (string, error) {
	return s.deliverShared(v)
}

// SendMutable delivers through a mutable handle: the callee may rewrite the
// contents, ownership stays with the caller. An emptied buffer fails with
// [ownbuf.ErrUseAfterMove].
func (s *Sender) SendMutable(b *ownbuf.Buffer) (string, error) {
	text, err := b.Text()
	if err != nil {
		return "", err
	}

	s.log.Printf("deliver (mutable handle): %s", text)
	return text, nil
}

// SendOwned is the by-value convention: the payload is adopted into the call
// and released when delivery finishes. Reaching it requires an explicit Move,
// since a persistent *Buffer would need an implicit duplication to fit here.
func (s *Sender) SendOwned(o ownbuf.Owned) (string, error) {
	return s.deliverOwned(o.Take())
}

// SendTransfer is the transfer-reference convention: the callee may consume
// the explicitly relinquished payload, and does.
func (s *Sender) SendTransfer(o ownbuf.Owned) (string, error) {
	return s.deliverOwned(o.Take())
}

// MakeBuffer returns a freshly constructed buffer. The result is returned
// directly: the caller already holds the only reference and can Move it when
// consuming, so marking the return value as transferred inside this function
// would add nothing and hide the handoff.
func MakeBuffer(text string, opts ...ownbuf.Option) (*ownbuf.Buffer, error) {
	return ownbuf.NewString(text, opts...)
}
