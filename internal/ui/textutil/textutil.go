// Package textutil lays out text in terminal columns. Item names mix ASCII
// with emoji icons, so widths are measured in cells, not bytes or runes.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal cells s occupies. ANSI styling is ignored.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most max cells, ending in Ellipsis when cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, Ellipsis)
}

// PadRight left-aligns s in a field of width cells, truncating if needed.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}

// PadLeft right-aligns s in a field of width cells, truncating if needed.
func PadLeft(s string, width int) string {
	s = Truncate(s, width)
	return strings.Repeat(" ", width-runewidth.StringWidth(s)) + s
}

// Column describes one column of a Table.
type Column struct {
	Title    string
	MaxWidth int  // 0 means unbounded
	Right    bool // right-align, for quantities
}

// Table renders rows as fixed-width columns separated by two spaces, with a
// header line. Each column is as wide as its widest cell, capped at MaxWidth.
func Table(cols []Column, rows [][]string) string {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = runewidth.StringWidth(c.Title)
	}
	for _, row := range rows {
		for i := range cols {
			if i < len(row) {
				if w := runewidth.StringWidth(row[i]); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	for i, c := range cols {
		if c.MaxWidth > 0 && widths[i] > c.MaxWidth {
			widths[i] = c.MaxWidth
		}
	}

	var b strings.Builder
	line := func(cells []string) {
		parts := make([]string, len(cols))
		for i, c := range cols {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if c.Right {
				parts[i] = PadLeft(cell, widths[i])
			} else {
				parts[i] = PadRight(cell, widths[i])
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		b.WriteByte('\n')
	}
	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.Title
	}
	line(titles)
	for _, row := range rows {
		line(row)
	}
	return b.String()
}
