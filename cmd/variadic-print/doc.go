// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// variadic-print is a command-line demonstration of variadic generic
// functions: it prints its arguments one per line, projects them to lengths,
// and replays them from a captured pack with index prefixes.
//
// # Usage
//
//	variadic-print [VALUE]...
//
// Without arguments it prints a default value list.
package main
