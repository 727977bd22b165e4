// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package sink demonstrates interface dispatch over a write surface: a small
// FileIO interface, a non-overridable helper built on it, and a concrete
// stdout implementation checked against the interface at compile time.
package sink
