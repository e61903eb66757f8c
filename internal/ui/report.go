package ui

// report.go renders non-interactive CLI output for cmd/launchstats.
// Lipgloss is used only for coloring text; table structure is plain
// string formatting. Interactive tables live in dashboard.go.

import (
	"fmt"
	"strings"

	"github.com/astrakit/launchdeck/internal/models"
)

// PrintHeader prints a styled header for a catalog report
func PrintHeader(source string, totalMissions int) {
	fmt.Println()
	fmt.Println(TitleStyle.Render("Launch Catalog: " + source))
	fmt.Println(DimStyle.Render(fmt.Sprintf("Total Missions: %s",
		AccentStyle.Render(fmt.Sprintf("%d", totalMissions)))))
	fmt.Println()
}

// PrintCompanyTable prints a ranked company table with counts
func PrintCompanyTable(title string, companies []models.CompanyCount) {
	if len(companies) == 0 {
		fmt.Println(DimStyle.Render(title + ": No data"))
		return
	}

	fmt.Println(TitleStyle.Render(title))

	nameWidth := len("Company")
	for _, c := range companies {
		if len(c.Company) > nameWidth {
			nameWidth = len(c.Company)
		}
	}

	fmt.Printf("  %-6s %-*s %10s\n", "Rank", nameWidth, "Company", "Missions")
	fmt.Println("  " + strings.Repeat("─", 6+1+nameWidth+1+10))
	for i, c := range companies {
		fmt.Printf("  %-6d %-*s %10d\n", i+1, nameWidth, c.Company, c.Count)
	}
	fmt.Println()
}

// PrintStatusTable prints the mission status breakdown in enum order
func PrintStatusTable(breakdown map[models.MissionStatus]int) {
	fmt.Println(TitleStyle.Render("Mission Status Breakdown"))
	for _, status := range models.AllMissionStatuses {
		style := NormalStyle
		switch status {
		case models.StatusSuccess:
			style = style.Foreground(ColorSuccess)
		case models.StatusFailure, models.StatusPrelaunchFailure:
			style = style.Foreground(ColorFailure)
		case models.StatusPartialFailure:
			style = style.Foreground(ColorAccent)
		}
		fmt.Printf("  %-20s %6d\n", style.Render(string(status)), breakdown[status])
	}
	fmt.Println()
}

// PrintMissionList prints mission names one per line
func PrintMissionList(title string, names []string) {
	fmt.Println(TitleStyle.Render(title))
	if len(names) == 0 {
		fmt.Println(DimStyle.Render("  (none)"))
		return
	}
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
}

// PrintSuccess prints a success message in green
func PrintSuccess(message string) {
	fmt.Println(NormalStyle.Foreground(ColorSuccess).Render("✓ " + message))
}

// PrintError prints an error message in red
func PrintError(message string) {
	fmt.Println(NormalStyle.Foreground(ColorFailure).Render("✗ " + message))
}
