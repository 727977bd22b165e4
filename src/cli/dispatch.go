// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/move-only-buffer/src/sink"
)

// NewDispatchCommand builds the command behind the virtual-dispatch binary:
// text goes through the FileIO interface into a stdout sink.
func NewDispatchCommand(version string) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:     "virtual-dispatch",
		Short:   "Interface dispatch demonstration",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file := sink.NewStdioFile(cmd.OutOrStdout())

			if _, err := sink.WriteString(file, text); err != nil {
				return err
			}
			_, err := sink.WriteString(file, "\n")
			return err
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "hello", "text to write through the dispatch surface")

	return cmd
}
