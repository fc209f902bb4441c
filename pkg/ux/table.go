// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrintTableToUser renders a two-column table on the user writer.
func (ul *UserLog) PrintTableToUser(header []string, rows [][]string) {
	table := tablewriter.NewTable(ul.writer)
	anyHeader := make([]any, len(header))
	for i, h := range header {
		anyHeader[i] = h
	}
	table.Header(anyHeader...)
	for _, row := range rows {
		_ = table.Append(row)
	}
	_ = table.Render()
}

// FormatCount renders an integer with thousands separators for display.
func FormatCount(n uint64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d", n)
}
