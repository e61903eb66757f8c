package ui

import "testing"

func TestCalculateColumnsFixedAndFlex(t *testing.T) {
	specs := []ColumnSpec{
		{Title: "Rank", FixedWidth: 6},
		{Title: "Company", FlexRatio: 60, MinWidth: 20},
		{Title: "Missions", FixedWidth: 10},
		{Title: "Share", FlexRatio: 40},
	}

	columns := CalculateColumns(specs, 100)

	if columns[0].Width != 6 {
		t.Errorf("fixed column width = %d, want 6", columns[0].Width)
	}
	if columns[2].Width != 10 {
		t.Errorf("fixed column width = %d, want 10", columns[2].Width)
	}
	// 84 remaining split 60:40
	if columns[1].Width != 50 {
		t.Errorf("flex column width = %d, want 50", columns[1].Width)
	}
	if columns[3].Width != 33 {
		t.Errorf("flex column width = %d, want 33", columns[3].Width)
	}
}

func TestCalculateColumnsRespectsMinWidth(t *testing.T) {
	specs := []ColumnSpec{
		{Title: "Name", FlexRatio: 10, MinWidth: 30},
		{Title: "Rest", FlexRatio: 90},
	}

	columns := CalculateColumns(specs, 60)

	if columns[0].Width < 30 {
		t.Errorf("column width = %d, want >= MinWidth 30", columns[0].Width)
	}
}

func TestCalculateColumnsNarrowTerminal(t *testing.T) {
	// Widths below 50 are clamped up so tables stay readable.
	columns := CalculateColumns([]ColumnSpec{{Title: "Project", FlexRatio: 100}}, 10)
	if columns[0].Width != 50 {
		t.Errorf("column width = %d, want 50", columns[0].Width)
	}
}

func TestDomainColumnSpecsHaveTitles(t *testing.T) {
	for _, specs := range [][]ColumnSpec{
		CompanyColumns(), StatusColumns(), YearColumns(), MissionColumns(), RocketColumns(),
	} {
		for i, s := range specs {
			if s.FixedWidth == 0 && s.FlexRatio == 0 {
				t.Errorf("spec %d (%q) has neither fixed width nor flex ratio", i, s.Title)
			}
		}
	}
}
