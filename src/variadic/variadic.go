// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package variadic

import (
	"fmt"
	"io"
)

// Print writes one line per value to w.
func Print[T any](w io.Writer, values ...T) {
	for _, v := range values {
		fmt.Fprintln(w, v)
	}
}

// Each applies fn to every value in order.
func Each[T any](fn func(T), values ...T) {
	for _, v := range values {
		fn(v)
	}
}

// EachWithIndex applies fn to every value in order, passing its position.
func EachWithIndex[T any](fn func(int, T), values ...T) {
	for i, v := range values {
		fn(i, v)
	}
}

// Map projects every value through fn, preserving order.
func Map[T, R any](fn func(T) R, values ...T) []R {
	out := make([]R, 0, len(values))
	for _, v := range values {
		out = append(out, fn(v))
	}
	return out
}
