package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
)

// sanitizeInput removes null bytes and other invisible control characters from input
func sanitizeInput(s string) string {
	result := strings.Map(func(r rune) rune {
		if r == 0 || (r < 32 && r != '\t' && r != '\n' && r != '\r') {
			return -1
		}
		return r
	}, s)
	return result
}

// PromptForCSVPath prompts for the path to a launch catalog CSV file
func PromptForCSVPath() (string, error) {
	var path string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Import Launch Catalog").
				Description("Path to a CSV file with Company, Date, Mission, Rocket, RocketStatus, MissionStatus columns").
				Placeholder("space_missions.csv").
				Value(&path).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return fmt.Errorf("path cannot be empty")
					}
					if _, err := os.Stat(s); err != nil {
						return fmt.Errorf("file not found: %s", s)
					}
					return nil
				}),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}

	return strings.TrimSpace(sanitizeInput(path)), nil
}

// DateRange holds the bounds entered in the date range form, YYYY-MM-DD.
type DateRange struct {
	Start string
	End   string
}

// PromptForDateRange prompts for an inclusive launch date range
func PromptForDateRange() (DateRange, error) {
	var r DateRange

	validDate := func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return fmt.Errorf("date cannot be empty")
		}
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return fmt.Errorf("use YYYY-MM-DD format")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start Date").
				Description("Inclusive, YYYY-MM-DD").
				Placeholder("1957-10-01").
				Value(&r.Start).
				Validate(validDate),
			huh.NewInput().
				Title("End Date").
				Description("Inclusive, YYYY-MM-DD").
				Placeholder("2022-12-31").
				Value(&r.End).
				Validate(validDate),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return DateRange{}, fmt.Errorf("prompt cancelled: %w", err)
	}

	r.Start = strings.TrimSpace(sanitizeInput(r.Start))
	r.End = strings.TrimSpace(sanitizeInput(r.End))
	return r, nil
}

// PromptForCompany prompts for a company name to drill into
func PromptForCompany() (string, error) {
	var company string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Company").
				Description("Exact name as it appears in the catalog (case-sensitive)").
				Placeholder("SpaceX").
				Value(&company).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("company cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}

	return strings.TrimSpace(sanitizeInput(company)), nil
}

// ConfirmImport asks whether to re-import a catalog into a project that
// already holds one.
func ConfirmImport(existing int) (bool, error) {
	var overwrite bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Project already contains a catalog").
				Description(fmt.Sprintf("%d missions are already imported. Import again?", existing)).
				Affirmative("Re-import").
				Negative("Keep existing").
				Value(&overwrite),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt cancelled: %w", err)
	}

	return overwrite, nil
}
