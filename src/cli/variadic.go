// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/move-only-buffer/src/variadic"
)

// NewVariadicCommand builds the command behind the variadic-print binary. It
// prints its arguments through the variadic helpers: one line per value, one
// projected length per value, then an index-prefixed replay from a captured
// pack.
func NewVariadicCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "variadic-print [VALUE]...",
		Short:   "Variadic printing demonstration",
		Version: version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"5", "hello", "42"}
			}
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "arity=%d\n", len(args))
			variadic.Print(out, args...)

			lengths := variadic.Map(func(s string) int { return len(s) }, args...)
			variadic.Print(out, lengths...)

			pack := variadic.NewPack(args...)
			pack.Run(out)
			return nil
		},
	}

	return cmd
}
