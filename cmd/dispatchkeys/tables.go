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
	presentRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "10"}).
			PaddingLeft(1).PaddingRight(1)
	winnerRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "9", Dark: "9"}).
			Bold(true).
			PaddingLeft(1).PaddingRight(1)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 0, 4)
)

// rowHighlight selects the style of a row.
type rowHighlight int

const (
	highlightNone rowHighlight = iota
	highlightPresent
	highlightWinner
)

// highlightedTable is a lipgloss table where rows can be highlighted.
type highlightedTable struct {
	Table      *lgtable.Table
	Count      int
	Highlights map[int]rowHighlight
}

// Row appends a row with the given highlight.
func (t *highlightedTable) Row(highlight rowHighlight, row ...string) {
	if highlight != highlightNone {
		t.Highlights[t.Count] = highlight
	}
	t.Table.Row(row...)
	t.Count++
}

// String renders the table.
func (t *highlightedTable) String() string {
	return t.Table.String()
}

// newTable creates a table. The last alignment given is used for the remaining columns.
func newTable(headers []string, alignments ...lipgloss.Position) *highlightedTable {
	t := &highlightedTable{
		Highlights: make(map[int]rowHighlight),
	}
	t.Table = lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if row < 0 {
				s = headerRowStyle
				return
			}
			switch t.Highlights[row] {
			case highlightWinner:
				s = winnerRowStyle
			case highlightPresent:
				s = presentRowStyle
			default:
				if row%2 == 0 {
					s = oddRowStyle
				} else {
					s = evenRowStyle
				}
			}
			alignment := lipgloss.Left
			if col < len(alignments) {
				alignment = alignments[col]
			} else if len(alignments) > 0 {
				alignment = alignments[len(alignments)-1]
			}
			s = s.Align(alignment)
			return
		})
	if len(headers) > 0 {
		t.Table.Headers(headers...)
	}
	return t
}
