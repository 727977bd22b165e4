// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the cobra commands behind the three demonstration
// binaries: the buffer ownership walk-through, the interface dispatch demo,
// and the variadic printing demo.
package cli
