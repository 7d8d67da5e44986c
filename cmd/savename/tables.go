// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle = lipgloss.NewStyle().Faint(false).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Faint(true).
			PaddingLeft(1).PaddingRight(1)
	redRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "9", Dark: "9"}).
			Bold(true).
			PaddingLeft(1).PaddingRight(1)
)

// highlightTable is a table where selected rows (e.g. parameters that differ between runs) are
// rendered in red.
type highlightTable struct {
	*lgtable.Table
	count       int
	highlighted map[int]bool
}

// AddRow appends a row, highlighting it if requested.
func (t *highlightTable) AddRow(highlight bool, row ...string) {
	if highlight {
		t.highlighted[t.count] = true
	}
	t.Table.Row(row...)
	t.count++
}

// newTable creates a table with alternating row styles. The alignments are given per column, the
// last one is used for the remaining columns, and the default is left-aligned.
func newTable(alignments ...lipgloss.Position) *highlightTable {
	t := &highlightTable{highlighted: make(map[int]bool)}
	t.Table = lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if row < 0 {
				return headerRowStyle
			}
			switch {
			case t.highlighted[row]:
				s = redRowStyle
			case row%2 == 0:
				s = oddRowStyle
			default:
				s = evenRowStyle
			}
			alignment := lipgloss.Left
			if col < len(alignments) {
				alignment = alignments[col]
			} else if len(alignments) > 0 {
				alignment = alignments[len(alignments)-1]
			}
			return s.Align(alignment)
		})
	return t
}
