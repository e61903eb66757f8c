package ui

// columns.go provides generic column width calculation for bubbles/table.
// Use ColumnSpec and CalculateColumns() instead of duplicating percentage-based math.

import (
	"github.com/charmbracelet/bubbles/table"
)

// ColumnSpec defines a table column with flexible or fixed width.
// Use FlexRatio for columns that should expand/contract with terminal width.
// Use FixedWidth for columns that should maintain constant width.
type ColumnSpec struct {
	Title      string
	MinWidth   int // Minimum width (0 = no minimum)
	FixedWidth int // If > 0, use this exact width (ignores FlexRatio)
	FlexRatio  int // Relative ratio for flexible columns (0 = fixed-only)
}

// CalculateColumns computes column widths from specs.
// Flexible columns split remaining space by ratio after fixed columns are allocated.
//
// Example:
//
//	columns := CalculateColumns([]ColumnSpec{
//	    {Title: "Company", FlexRatio: 60, MinWidth: 20},
//	    {Title: "Missions", FixedWidth: 10},
//	}, layout.TableWidth)
func CalculateColumns(specs []ColumnSpec, totalWidth int) []table.Column {
	if totalWidth < 50 {
		totalWidth = 50
	}

	// First pass: allocate fixed widths and sum flex ratios
	fixedTotal := 0
	flexTotal := 0
	for _, s := range specs {
		if s.FixedWidth > 0 {
			fixedTotal += s.FixedWidth
		} else {
			flexTotal += s.FlexRatio
		}
	}

	remaining := totalWidth - fixedTotal
	if remaining < 0 {
		remaining = 0
	}

	// Second pass: calculate final widths
	columns := make([]table.Column, len(specs))
	for i, s := range specs {
		var width int
		if s.FixedWidth > 0 {
			width = s.FixedWidth
		} else if flexTotal > 0 {
			width = remaining * s.FlexRatio / flexTotal
		}

		if s.MinWidth > 0 && width < s.MinWidth {
			width = s.MinWidth
		}

		columns[i] = table.Column{Title: s.Title, Width: width}
	}

	return columns
}

// CompanyColumns returns column specs for the company leaderboard table.
func CompanyColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Rank", FixedWidth: 6},
		{Title: "Company", FlexRatio: 60, MinWidth: 20},
		{Title: "Missions", FixedWidth: 10},
		{Title: "Success %", FixedWidth: 11},
		{Title: "Share %", FixedWidth: 9},
	}
}

// StatusColumns returns column specs for the mission status breakdown table.
func StatusColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Status", FlexRatio: 40, MinWidth: 18},
		{Title: "Missions", FixedWidth: 10},
		{Title: "Share", FlexRatio: 60, MinWidth: 20},
	}
}

// YearColumns returns column specs for the launches-per-year table.
func YearColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Year", FixedWidth: 6},
		{Title: "Launches", FixedWidth: 10},
		{Title: "", FlexRatio: 100, MinWidth: 20}, // bar
	}
}

// MissionColumns returns column specs for the raw mission table.
func MissionColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Date", FixedWidth: 12},
		{Title: "Company", FlexRatio: 25, MinWidth: 14},
		{Title: "Mission", FlexRatio: 40, MinWidth: 20},
		{Title: "Rocket", FlexRatio: 25, MinWidth: 14},
		{Title: "Status", FixedWidth: 18},
	}
}

// RocketColumns returns column specs for the rocket usage table.
func RocketColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Rank", FixedWidth: 6},
		{Title: "Rocket", FlexRatio: 70, MinWidth: 24},
		{Title: "Launches", FixedWidth: 10},
	}
}
