// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// move-only-buffer is a command-line demonstration of exclusive buffer
// ownership: construction, the four call conventions, value-category
// probing, ownership transfer, and a delegate carrying a move-only payload.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/move-only-buffer/cmd/move-only-buffer@latest
//
// # Usage
//
//	move-only-buffer [FLAGS]
//
// # Flags
//
//	-c, --config     Load settings from CONFIG_FILE (json or yaml)
//	-f, --format     Trace output format: text, json, or table
//	-a, --allocator  Allocation backend: heap, pooled, or manual
//	-m, --matrix     Render the call-convention acceptance matrix
//
// # Examples
//
// Run the demonstration with the pooled backend:
//
//	move-only-buffer --allocator pooled
//
// Emit structured trace lines:
//
//	move-only-buffer --format json
//
// Show the acceptance matrix:
//
//	move-only-buffer --matrix
package main
