// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// virtual-dispatch is a command-line demonstration of interface dispatch:
// text flows through the small FileIO interface into a concrete stdout sink.
//
// # Usage
//
//	virtual-dispatch [FLAGS]
//
// # Flags
//
//	-t, --text  Text to write through the dispatch surface (default "hello")
package main
