// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package delegate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/move-only-buffer/src/delegate"
	"github.com/H0llyW00dzZ/move-only-buffer/src/internal/mem/alloc"
	"github.com/H0llyW00dzZ/move-only-buffer/src/internal/mem/ownbuf"
)

// bindInScope builds a delegate inside its own function so the originating
// buffer variable is out of reach by the time the delegate runs.
func bindInScope(t *testing.T, tracker alloc.Allocator, report func(string)) *delegate.Delegate {
	t.Helper()

	b, err := ownbuf.NewString("lambda buffer", ownbuf.WithAllocator(tracker))
	require.NoError(t, err, "NewString() error")

	d := delegate.Bind(b.Move(), func(captured *ownbuf.Buffer) error {
		text, err := captured.Text()
		if err != nil {
			return err
		}
		report(text)
		return nil
	})

	// The originating buffer is already emptied; releasing it here must not
	// disturb the delegate's payload.
	b.Release()
	assert.False(t, b.Valid(), "the originating buffer must be emptied by the bind")

	return d
}

func TestDelegate(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Invokes After Originating Scope Exits",
			testFunc: func(t *testing.T) {
				tracker := alloc.NewTracking(alloc.Heap())

				var got []string
				d := bindInScope(t, tracker, func(s string) { got = append(got, s) })
				defer d.Release()

				require.NoError(t, d.Invoke(), "Invoke() error")
				assert.Equal(t, []string{"lambda buffer"}, got, "expected exactly one report of the captured content")
			},
		},
		{
			name: "Invoke Is Repeatable While Payload Held",
			testFunc: func(t *testing.T) {
				tracker := alloc.NewTracking(alloc.Heap())

				var got []string
				d := bindInScope(t, tracker, func(s string) { got = append(got, s) })
				defer d.Release()

				require.NoError(t, d.Invoke(), "first Invoke() error")
				require.NoError(t, d.Invoke(), "second Invoke() error")
				assert.Len(t, got, 2, "a non-consuming invocation must be repeatable")
			},
		},
		{
			name: "Release Frees Payload Exactly Once",
			testFunc: func(t *testing.T) {
				tracker := alloc.NewTracking(alloc.Heap())

				d := bindInScope(t, tracker, func(string) {})

				d.Release()
				d.Release()

				assert.Equal(t, 1, tracker.Releases(), "expected exactly one release")
				assert.Zero(t, tracker.Live(), "expected no live regions")
				assert.Zero(t, tracker.ForeignReleases(), "expected no double release")

				assert.ErrorIs(t, d.Invoke(), ownbuf.ErrUseAfterMove, "invoking a released delegate must fail")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}
