// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/move-only-buffer/src/config"
	"github.com/H0llyW00dzZ/move-only-buffer/src/internal/mem/alloc"
)

// Execute runs a demonstration command under ctx so a termination signal
// cancels it cleanly.
func Execute(ctx context.Context, cmd *cobra.Command) error {
	return cmd.ExecuteContext(ctx)
}

// newAllocator maps a configured backend name to an allocator plus its
// cleanup function.
func newAllocator(name string) (alloc.Allocator, func() error, error) {
	switch name {
	case config.AllocatorHeap:
		return alloc.Heap(), func() error { return nil }, nil
	case config.AllocatorPooled:
		return alloc.Pooled(), func() error { return nil }, nil
	case config.AllocatorManual:
		m := alloc.NewManual()
		return m, m.Close, nil
	default:
		return nil, nil, fmt.Errorf("cli: unknown allocator %q", name)
	}
}
