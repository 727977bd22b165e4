// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package variadic demonstrates variadic generic functions: per-element
// printing, foreach application with and without indices, projection, and a
// Pack type that captures an argument list for later replay.
package variadic
