// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sender

import "github.com/H0llyW00dzZ/move-only-buffer/src/internal/mem/ownbuf"

// Convention identifies one of the four parameter-passing conventions the
// Send variants demonstrate.
type Convention uint8

const (
	// ByValue adopts ownership into the parameter (SendOwned).
	ByValue Convention = iota
	// MutableRef lets the callee mutate without taking ownership (SendMutable).
	MutableRef
	// ReadOnlyRef observes without mutating or consuming (Send).
	ReadOnlyRef
	// TransferRef may consume an explicitly relinquished payload (SendTransfer).
	TransferRef
)

// String returns a human-readable representation of the convention.
func (c Convention) String() string {
	switch c {
	case ByValue:
		return "by-value"
	case MutableRef:
		return "mutable-reference"
	case ReadOnlyRef:
		return "read-only-reference"
	case TransferRef:
		return "transfer-reference"
	default:
		return "unknown"
	}
}

// Accepts reports whether the convention binds a handle of the given value
// category. This is the acceptance matrix the Send variants encode in their
// parameter types, stated as data so it can be rendered and asserted.
func (c Convention) Accepts(v ownbuf.ValueCategory) bool {
	switch c {
	case ByValue, TransferRef:
		return v == ownbuf.Expiring
	case MutableRef:
		return v == ownbuf.Persistent
	case ReadOnlyRef:
		return true
	default:
		return false
	}
}

// Conventions lists every convention in matrix order.
func Conventions() []Convention {
	return []Convention{ByValue, MutableRef, ReadOnlyRef, TransferRef}
}
