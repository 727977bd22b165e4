// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package alloc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/move-only-buffer/src/internal/mem/alloc"
)

func TestAllocatorBackends(t *testing.T) {
	backends := []struct {
		name string
		make func(t *testing.T) alloc.Allocator
	}{
		{
			name: "Heap",
			make: func(t *testing.T) alloc.Allocator { return alloc.Heap() },
		},
		{
			name: "Pooled",
			make: func(t *testing.T) alloc.Allocator { return alloc.Pooled() },
		},
		{
			name: "Manual",
			make: func(t *testing.T) alloc.Allocator {
				m := alloc.NewManual()
				t.Cleanup(func() { _ = m.Close() })
				return m
			},
		},
	}

	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			tests := []struct {
				name     string
				testFunc func(t *testing.T, a alloc.Allocator)
			}{
				{
					name: "Allocate Exact Size",
					testFunc: func(t *testing.T, a alloc.Allocator) {
						b, err := a.Allocate(16)
						require.NoError(t, err, "Allocate() error")

						assert.Len(t, b, 16, "expected a 16 byte region")
						a.Release(b)
					},
				},
				{
					name: "Zero Size Region Is Not Nil",
					testFunc: func(t *testing.T, a alloc.Allocator) {
						b, err := a.Allocate(0)
						require.NoError(t, err, "Allocate() error")

						assert.NotNil(t, b, "a zero byte region must still be distinguishable from no region")
						assert.Empty(t, b, "expected an empty region")
						a.Release(b)
					},
				},
				{
					name: "Region Round Trips Content",
					testFunc: func(t *testing.T, a alloc.Allocator) {
						b, err := a.Allocate(5)
						require.NoError(t, err, "Allocate() error")

						copy(b, "hello")
						assert.Equal(t, "hello", string(b), "region did not hold its content")
						a.Release(b)
					},
				},
				{
					name: "Regions Are Distinct",
					testFunc: func(t *testing.T, a alloc.Allocator) {
						b1, err := a.Allocate(4)
						require.NoError(t, err, "Allocate() error")
						b2, err := a.Allocate(4)
						require.NoError(t, err, "Allocate() error")

						copy(b1, "aaaa")
						copy(b2, "bbbb")
						assert.Equal(t, "aaaa", string(b1), "live regions must not alias")

						a.Release(b1)
						a.Release(b2)
					},
				},
			}

			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					tt.testFunc(t, backend.make(t))
				})
			}
		})
	}
}

func TestPooledRecyclesRegions(t *testing.T) {
	a := alloc.Pooled()

	b, err := a.Allocate(8)
	require.NoError(t, err, "Allocate() error")
	copy(b, "12345678")
	a.Release(b)

	// A recycled region may carry stale bytes; it only has to be the right size.
	b2, err := a.Allocate(8)
	require.NoError(t, err, "Allocate() error")
	assert.Len(t, b2, 8, "expected an 8 byte region")
	a.Release(b2)
}

func TestTracking(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T, tr *alloc.Tracking)
	}{
		{
			name: "Pairs Allocate With Release",
			testFunc: func(t *testing.T, tr *alloc.Tracking) {
				b, err := tr.Allocate(8)
				require.NoError(t, err, "Allocate() error")

				assert.Equal(t, 1, tr.Allocs(), "expected one allocation")
				assert.Equal(t, 1, tr.Live(), "expected one live region")

				tr.Release(b)
				assert.Equal(t, 1, tr.Releases(), "expected one release")
				assert.Zero(t, tr.Live(), "expected no live regions")
			},
		},
		{
			name: "Tracks Zero Size Regions",
			testFunc: func(t *testing.T, tr *alloc.Tracking) {
				b, err := tr.Allocate(0)
				require.NoError(t, err, "Allocate() error")

				assert.Equal(t, 1, tr.Live(), "a zero byte region is still live")

				tr.Release(b)
				assert.Zero(t, tr.Live(), "expected no live regions")
				assert.Zero(t, tr.ForeignReleases(), "expected no foreign releases")
			},
		},
		{
			name: "Detects Double Release",
			testFunc: func(t *testing.T, tr *alloc.Tracking) {
				b, err := tr.Allocate(8)
				require.NoError(t, err, "Allocate() error")

				tr.Release(b)
				tr.Release(b)

				assert.Equal(t, 1, tr.Releases(), "second release must not be forwarded")
				assert.Equal(t, 1, tr.ForeignReleases(), "expected the double release to be counted")
			},
		},
		{
			name: "Detects Foreign Region",
			testFunc: func(t *testing.T, tr *alloc.Tracking) {
				tr.Release(make([]byte, 3))

				assert.Zero(t, tr.Releases(), "foreign region must not count as a release")
				assert.Equal(t, 1, tr.ForeignReleases(), "expected one foreign release")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t, alloc.NewTracking(alloc.Heap()))
		})
	}
}
