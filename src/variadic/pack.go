// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package variadic

import (
	"fmt"
	"io"
)

// Pack captures a variadic argument list as a value so it can be carried
// around and replayed later.
type Pack[T any] struct {
	values []T
}

// NewPack captures values into a Pack.
func NewPack[T any](values ...T) *Pack[T] {
	captured := make([]T, len(values))
	copy(captured, values)
	return &Pack[T]{values: captured}
}

// Len returns the arity of the captured list.
func (p *Pack[T]) Len() int { return len(p.values) }

// Values returns a copy of the captured list.
func (p *Pack[T]) Values() []T {
	out := make([]T, len(p.values))
	copy(out, p.values)
	return out
}

// Run prints every captured value to w, prefixed with its position.
func (p *Pack[T]) Run(w io.Writer) {
	for i, v := range p.values {
		fmt.Fprintf(w, "%d: %v\n", i, v)
	}
}
