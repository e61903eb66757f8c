package ui

// chart.go renders horizontal bar charts as table cell content.
// Bars scale to the widest value so the longest bar always fills the
// available width.

import (
	"fmt"
	"strings"
)

// Bar returns a horizontal bar of the given value scaled against max into
// width cells. A non-zero value always renders at least one cell so small
// categories stay visible.
func Bar(value, max, width int) string {
	if max <= 0 || width <= 0 || value <= 0 {
		return ""
	}
	cells := value * width / max
	if cells == 0 {
		cells = 1
	}
	if cells > width {
		cells = width
	}
	return strings.Repeat("█", cells)
}

// BarWithShare returns a bar scaled against the category maximum followed by
// a share-of-total label, e.g. "███████ 42.3%".
func BarWithShare(value, max, total, width int) string {
	share := 0.0
	if total > 0 {
		share = float64(value) / float64(total) * 100
	}
	bar := Bar(value, max, width)
	if bar != "" {
		bar += " "
	}
	return bar + fmt.Sprintf("%.1f%%", share)
}
