// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package alloc

// Allocator supplies contiguous byte regions for exclusively owned buffers.
//
// Allocate returns a region of exactly n bytes. The region is non-nil even for
// n == 0, so callers can distinguish an empty region from no region at all.
// Release returns a region obtained from the same allocator; a region must be
// released at most once and never read afterward.
//
// Allocator implementations must be safe for concurrent use by multiple
// goroutines. The buffers built on top of them are not; exclusivity of
// ownership is enforced one layer up.
type Allocator interface {
	Allocate(n int) ([]byte, error)
	Release(b []byte)
}

// heap is the default allocator. Regions come from the Go heap and are
// reclaimed by the garbage collector, so Release only severs the reference.
type heap struct{}

// Heap returns the garbage-collected allocator.
func Heap() Allocator { return heap{} }

// Allocate returns a fresh zeroed region of n bytes.
func (heap) Allocate(n int) ([]byte, error) { return make([]byte, n), nil }

// Release is a no-op; the garbage collector reclaims heap regions.
func (heap) Release([]byte) {}
