// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/move-only-buffer/src/config"
	"github.com/H0llyW00dzZ/move-only-buffer/src/delegate"
	"github.com/H0llyW00dzZ/move-only-buffer/src/internal/mem/alloc"
	"github.com/H0llyW00dzZ/move-only-buffer/src/internal/mem/ownbuf"
	"github.com/H0llyW00dzZ/move-only-buffer/src/logger"
	"github.com/H0llyW00dzZ/move-only-buffer/src/sender"
)

// NewOwnershipCommand builds the command behind the move-only-buffer binary.
// It walks through construction, the four call conventions, value-category
// probing, ownership adoption, and a delegate outliving its scope, tracing
// each step through log.
func NewOwnershipCommand(version string, log logger.Logger) *cobra.Command {
	var (
		configFile string
		format     string
		allocator  string
		showMatrix bool
	)

	cmd := &cobra.Command{
		Use:     "move-only-buffer",
		Short:   "Exclusive buffer ownership demonstration",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if format != "" {
				cfg.Trace.Format = format
			}
			if allocator != "" {
				cfg.Allocator = allocator
			}

			out := log
			switch cfg.Trace.Format {
			case config.FormatText:
			case config.FormatJSON:
				out = logger.NewTraceLogger(cmd.OutOrStdout(), false)
			case config.FormatTable:
				showMatrix = true
			default:
				return fmt.Errorf("cli: unknown trace format %q", cfg.Trace.Format)
			}

			if err := runOwnership(cfg, out); err != nil {
				return err
			}

			if showMatrix {
				out.Println(renderMatrix())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "load settings from CONFIG_FILE (json or yaml)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "trace output format: text, json, or table")
	cmd.Flags().StringVarP(&allocator, "allocator", "a", "", "allocation backend: heap, pooled, or manual")
	cmd.Flags().BoolVarP(&showMatrix, "matrix", "m", false, "render the call-convention acceptance matrix")

	return cmd
}

// runOwnership executes the demonstration scenarios against the configured
// allocation backend, with a tracking decorator so the final trace line can
// prove every region was released.
func runOwnership(cfg *config.Config, log logger.Logger) error {
	base, cleanup, err := newAllocator(cfg.Allocator)
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	tracker := alloc.NewTracking(base)
	withAlloc := ownbuf.WithAllocator(tracker)
	s := sender.New(log)

	// Construction and the non-consuming conventions.
	b1, err := sender.MakeBuffer(cfg.Trace.Payload, withAlloc)
	if err != nil {
		return err
	}
	log.Println(b1.Probe())
	if _, err := s.SendMutable(b1); err != nil {
		return err
	}
	if _, err := s.Send(b1); err != nil {
		return err
	}

	// An explicit move: the token probes as expiring, still binds read-only,
	// and is finally adopted by the by-value convention.
	o := b1.Move()
	log.Println(o.Probe())
	if _, err := s.Send(o); err != nil {
		return err
	}
	if _, err := s.SendOwned(o); err != nil {
		return err
	}

	// A temporary handed straight into the transfer-reference convention.
	tmp, err := ownbuf.NewString("temporary r-value", withAlloc)
	if err != nil {
		return err
	}
	if _, err := s.SendTransfer(tmp.Move()); err != nil {
		return err
	}

	// Transfer-assignment, including the guarded self-transfer.
	b2, err := sender.MakeBuffer("buffer2", withAlloc)
	if err != nil {
		return err
	}
	b3, err := sender.MakeBuffer("buffer3", withAlloc)
	if err != nil {
		return err
	}
	b2.Adopt(b3.Move())
	b2.Adopt(b2.Move())
	if _, err := s.SendMutable(b2); err != nil {
		return err
	}
	b2.Release()

	// A delegate carrying its payload past the scope that created it.
	d := func() *delegate.Delegate {
		bl, err := ownbuf.NewString("lambda buffer", withAlloc)
		if err != nil {
			return nil
		}
		return delegate.Bind(bl.Move(), func(captured *ownbuf.Buffer) error {
			text, err := captured.Text()
			if err != nil {
				return err
			}
			log.Printf("delegate: %s", text)
			return nil
		})
	}()
	if d == nil {
		return ownbuf.ErrAllocFailed
	}
	if err := d.Invoke(); err != nil {
		return err
	}
	d.Release()

	log.Printf("allocations=%d releases=%d live=%d",
		tracker.Allocs(), tracker.Releases(), tracker.Live())
	return nil
}
