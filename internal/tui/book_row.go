package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Column width ratios for compact rows: title 40%, author 30%,
// series 20%, rating takes the rest.
type columnWidths struct {
	title  int
	author int
	series int
	rating int
}

func computeColumnWidths(total int) columnWidths {
	// Account for the cursor gutter and separators.
	usable := total - 8
	if usable < 40 {
		usable = 40
	}
	w := columnWidths{
		title:  usable * 40 / 100,
		author: usable * 30 / 100,
		series: usable * 20 / 100,
	}
	w.rating = usable - w.title - w.author - w.series
	if w.rating < 6 {
		w.rating = 6
	}
	return w
}

// padOrTruncate forces s to exactly width display cells, accounting for
// wide runes and ANSI sequences.
func padOrTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width-1, "…")
	}
	return s + strings.Repeat(" ", width-w)
}
