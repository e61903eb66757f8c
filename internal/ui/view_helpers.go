package ui

// view_helpers.go provides common View() rendering helpers.
// Use these to build consistent two-box layouts across all TUI models.

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/table"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripEscapeCodes removes ANSI color codes so a row can be restyled whole.
func stripEscapeCodes(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// truncateToWidth cuts a plain string down to the given printable width.
func truncateToWidth(s string, width int) string {
	if StringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && StringWidth(string(runes)) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

// RenderTableWithSelection renders a bubbles table with full-width selection
// highlight. The table's Selected style must be neutral (ApplyTableStyles
// does this); the visible selection styling is applied here instead, so the
// highlight spans the whole row rather than just the cell text.
//
// Line 0 of the bubbles output is the header; data rows follow, already
// windowed by the table's own viewport.
func RenderTableWithSelection(t table.Model, layout Layout) string {
	lines := strings.Split(t.View(), "\n")
	var result []string

	cursor := t.Cursor()
	height := t.Height()
	totalRows := len(t.Rows())

	// Recompute the table's scroll offset so the highlight lands on the
	// visible cursor row.
	start := 0
	if totalRows > height {
		if cursor >= height {
			start = cursor - height + 1
		}
		maxStart := totalRows - height
		if start > maxStart {
			start = maxStart
		}
	}
	visibleCursorIndex := cursor - start

	for i, line := range lines {
		if i == 0 {
			result = append(result, NormalStyle.Render(line))
			continue
		}

		dataRowIndex := i - 1
		if dataRowIndex == visibleCursorIndex && totalRows > 0 {
			cleanLine := stripEscapeCodes(line)
			if StringWidth(cleanLine) < layout.InnerWidth {
				cleanLine = cleanLine + strings.Repeat(" ", layout.InnerWidth-StringWidth(cleanLine))
			} else if StringWidth(cleanLine) > layout.InnerWidth {
				cleanLine = truncateToWidth(cleanLine, layout.InnerWidth)
			}
			result = append(result, SelectedStyle.Render(cleanLine))
			continue
		}

		result = append(result, NormalStyle.Render(line))
	}

	return strings.Join(result, "\n")
}

// ViewHeader renders title + full-width divider + spacing.
// Use at the start of all View() content to ensure consistent headers.
func ViewHeader(title string, innerWidth int) string {
	var b strings.Builder
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")
	b.WriteString(FullWidthDivider(innerWidth))
	b.WriteString("\n\n")
	return b.String()
}

// ViewHeaderWithSubtitle renders title + subtitle + divider + spacing.
func ViewHeaderWithSubtitle(title, subtitle string, innerWidth int) string {
	var b strings.Builder
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")
	if subtitle != "" {
		b.WriteString(RenderDim(subtitle))
		b.WriteString("\n")
	}
	b.WriteString(FullWidthDivider(innerWidth))
	b.WriteString("\n\n")
	return b.String()
}

// CenterText centers text within given width.
// Uses StringWidth() for accurate ANSI-aware width calculation.
func CenterText(text string, width int) string {
	textW := StringWidth(text)
	if textW >= width {
		return text
	}
	padding := (width - textW) / 2
	return strings.Repeat(" ", padding) + text
}

// FullWidthDivider returns a horizontal divider spanning the inner width.
func FullWidthDivider(innerWidth int) string {
	return strings.Repeat("─", innerWidth)
}

// RenderListItem renders a list item with bullet and optional selection highlight.
func RenderListItem(text string, selected bool, width int) string {
	prefix := "• "
	if selected {
		line := prefix + text
		if StringWidth(line) < width {
			line += strings.Repeat(" ", width-StringWidth(line))
		}
		return SelectedStyle.Render(line)
	}
	return RenderNormal(prefix + text)
}
