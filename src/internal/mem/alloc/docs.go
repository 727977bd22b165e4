// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package alloc provides the allocation backends that supply owned byte regions
// to the buffer layer. It abstracts the [bytebufferpool] and [cznic/memory]
// libraries behind a single Allocator interface so callers can switch between
// garbage-collected, pooled, and manually managed regions, and ships a tracking
// decorator for verifying allocate/release pairing in tests.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
// [cznic/memory]: https://github.com/cznic/memory
package alloc
