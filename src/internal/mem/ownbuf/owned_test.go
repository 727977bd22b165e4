// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ownbuf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/move-only-buffer/src/internal/mem/alloc"
	"github.com/H0llyW00dzZ/move-only-buffer/src/internal/mem/ownbuf"
)

func TestOwnedToken(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Reads Do Not Spend The Token",
			testFunc: func(t *testing.T) {
				b, err := ownbuf.NewString("in flight")
				require.NoError(t, err, "NewString() error")

				o := b.Move()
				text, err := o.Text()
				require.NoError(t, err, "Text() error")
				assert.Equal(t, "in flight", text, "token must expose the moved content")
				assert.Equal(t, 9, o.Len(), "token must expose the moved size")

				taken := o.Take()
				defer taken.Release()
				assert.True(t, taken.Valid(), "token must still be spendable after reads")
			},
		},
		{
			name: "Take Spends The Token Once",
			testFunc: func(t *testing.T) {
				b, err := ownbuf.NewString("single use")
				require.NoError(t, err, "NewString() error")

				o := b.Move()
				taken := o.Take()
				defer taken.Release()

				assert.PanicsWithValue(t, ownbuf.ErrUseAfterMove, func() { o.Take() },
					"taking a spent token must panic")
				_, err = o.Text()
				assert.ErrorIs(t, err, ownbuf.ErrUseAfterMove, "reading a spent token must fail")
			},
		},
		{
			name: "Copies Of A Token Share One Spend",
			testFunc: func(t *testing.T) {
				b, err := ownbuf.NewString("shared fate")
				require.NoError(t, err, "NewString() error")

				o := b.Move()
				dup := o // copying the token does not duplicate ownership

				taken := o.Take()
				defer taken.Release()

				assert.PanicsWithValue(t, ownbuf.ErrUseAfterMove, func() { dup.Take() },
					"spending any copy must invalidate all copies")
			},
		},
		{
			name: "Discard Releases The Region Exactly Once",
			testFunc: func(t *testing.T) {
				tracker := alloc.NewTracking(alloc.Heap())

				b, err := ownbuf.NewString("dropped", ownbuf.WithAllocator(tracker))
				require.NoError(t, err, "NewString() error")

				o := b.Move()
				o.Discard()
				o.Discard() // already spent, must be a no-op

				assert.Equal(t, 1, tracker.Releases(), "expected exactly one release")
				assert.Zero(t, tracker.ForeignReleases(), "expected no double release")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestProbeReportsValueCategory(t *testing.T) {
	b, err := ownbuf.NewString("categorized")
	require.NoError(t, err, "NewString() error")
	defer b.Release()

	assert.Contains(t, b.Probe(), ownbuf.Persistent.String(),
		"a named buffer must probe as persistent")

	o := b.Move()
	assert.Contains(t, o.Probe(), ownbuf.Expiring.String(),
		"a moved token must probe as expiring")

	o.Discard()
}

func TestValueCategoryString(t *testing.T) {
	assert.Equal(t, "persistent (l-value)", ownbuf.Persistent.String())
	assert.Equal(t, "expiring (r-value)", ownbuf.Expiring.String())
	assert.Equal(t, "unknown", ownbuf.ValueCategory(99).String())
}

func TestViewBindsBothCategories(t *testing.T) {
	read := func(v ownbuf.View) string {
		text, err := v.Text()
		require.NoError(t, err, "Text() error")
		return text
	}

	persistent, err := ownbuf.NewString("named")
	require.NoError(t, err, "NewString() error")
	defer persistent.Release()

	assert.Equal(t, "named", read(persistent), "a persistent buffer must bind read-only")

	expiring, err := ownbuf.NewString("moved")
	require.NoError(t, err, "NewString() error")
	o := expiring.Move()
	assert.Equal(t, "moved", read(o), "an expiring token must bind read-only")
	o.Discard()
}
