// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package alloc

import "sync"

// Tracking decorates another allocator and counts every allocation and
// release flowing through it. It is the test double used to verify that each
// region is released exactly once: Live reports regions still outstanding and
// ForeignReleases reports releases of regions the tracker never handed out,
// which is how a double release shows up.
type Tracking struct {
	inner Allocator

	mu              sync.Mutex
	allocs          int
	releases        int
	zeroLive        int
	live            map[*byte]struct{}
	foreignReleases int
}

// NewTracking wraps inner with allocation tracking.
func NewTracking(inner Allocator) *Tracking {
	return &Tracking{inner: inner, live: make(map[*byte]struct{})}
}

// Allocate forwards to the inner allocator and records the region as live.
func (t *Tracking) Allocate(n int) ([]byte, error) {
	b, err := t.inner.Allocate(n)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.allocs++
	if len(b) == 0 {
		t.zeroLive++
	} else {
		t.live[&b[0]] = struct{}{}
	}
	t.mu.Unlock()

	return b, nil
}

// Release records the release and forwards to the inner allocator. Releasing
// a region that is not live is counted instead of forwarded, so a buggy
// double release cannot corrupt the inner allocator mid-test.
func (t *Tracking) Release(b []byte) {
	t.mu.Lock()
	if len(b) == 0 {
		if t.zeroLive == 0 {
			t.foreignReleases++
			t.mu.Unlock()
			return
		}
		t.zeroLive--
	} else {
		if _, ok := t.live[&b[0]]; !ok {
			t.foreignReleases++
			t.mu.Unlock()
			return
		}
		delete(t.live, &b[0])
	}
	t.releases++
	t.mu.Unlock()

	t.inner.Release(b)
}

// Allocs reports the total number of successful allocations.
func (t *Tracking) Allocs() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.allocs
}

// Releases reports the total number of matched releases.
func (t *Tracking) Releases() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.releases
}

// Live reports the number of regions allocated but not yet released.
func (t *Tracking) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live) + t.zeroLive
}

// ForeignReleases reports releases of regions the tracker does not consider
// live, including double releases.
func (t *Tracking) ForeignReleases() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.foreignReleases
}
