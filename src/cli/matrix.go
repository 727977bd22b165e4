// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/H0llyW00dzZ/move-only-buffer/src/internal/mem/ownbuf"
	"github.com/H0llyW00dzZ/move-only-buffer/src/sender"
)

// renderMatrix renders the call-convention acceptance matrix as a markdown
// table: one row per convention, one column per value category.
func renderMatrix() string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"Convention", "Persistent (named)", "Expiring (moved)"})

	var rows [][]string
	for _, conv := range sender.Conventions() {
		rows = append(rows, []string{
			conv.String(),
			verdict(conv.Accepts(ownbuf.Persistent)),
			verdict(conv.Accepts(ownbuf.Expiring)),
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

func verdict(accepted bool) string {
	if accepted {
		return "accepted"
	}
	return "rejected"
}
