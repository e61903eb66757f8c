package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/astrakit/launchdeck/internal/dataset"
	"github.com/astrakit/launchdeck/internal/db"
	"github.com/astrakit/launchdeck/internal/ui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const defaultDBPath = "launchdeck.db"

func main() {
	// Show splash screen on startup
	ui.ShowSplash()

	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	csvFlag := flag.String("csv", "", "Import a launch catalog CSV into the project")
	dbPath := flag.String("db", "", "Path to SQLite project file (bypasses project selector)")
	flag.Parse()

	// Environment fallbacks for scripted use
	if *csvFlag == "" {
		*csvFlag = os.Getenv("LAUNCHDECK_CSV")
	}
	if *dbPath == "" && os.Getenv("LAUNCHDECK_DB") != "" {
		*dbPath = os.Getenv("LAUNCHDECK_DB")
	}

	// Determine project path
	var selectedDBPath string

	if *dbPath != "" {
		// Explicit --db flag bypasses project selector
		selectedDBPath = *dbPath
	} else if *csvFlag != "" {
		// Importing without a project goes to the default database
		selectedDBPath = defaultDBPath
	} else {
		result, err := ui.RunProjectSelector()
		if err != nil {
			ui.PrintError(fmt.Sprintf("Project selector failed: %v", err))
			os.Exit(1)
		}

		switch result.Action {
		case "exit":
			return
		case "open":
			selectedDBPath = result.ProjectPath
		case "create":
			selectedDBPath = result.ProjectPath
			fmt.Println()
			ui.PrintSuccess(fmt.Sprintf("Creating new project: %s", selectedDBPath))
		}
	}

	logger := newLogger(selectedDBPath)

	// Initialize project database
	database, err := db.New(selectedDBPath)
	if err != nil {
		ui.PrintError(fmt.Sprintf("Failed to initialize database: %v", err))
		os.Exit(1)
	}
	defer database.Close()

	hasMissions, err := database.HasMissions()
	if err != nil {
		ui.PrintError(fmt.Sprintf("Failed to inspect project: %v", err))
		os.Exit(1)
	}

	csvPath := *csvFlag

	// A fresh project needs a catalog before the dashboard can show anything
	if !hasMissions && csvPath == "" {
		csvPath, err = ui.PromptForCSVPath()
		if err != nil {
			return // cancelled
		}
	}

	// A populated project only re-imports on explicit confirmation
	if hasMissions && csvPath != "" {
		count, _ := database.MissionCount()
		overwrite, err := ui.ConfirmImport(count)
		if err != nil || !overwrite {
			csvPath = ""
		}
	}

	if csvPath != "" {
		if err := importCatalog(database, csvPath, logger); err != nil {
			ui.PrintError(fmt.Sprintf("Import failed: %v", err))
			os.Exit(1)
		}
	}

	// Load the catalog and the stored aggregates the dashboard tabs render
	var data ui.DashboardData
	var loadErr error
	if err := ui.RunWithSpinner("Loading catalog...", func() {
		data, loadErr = loadDashboardData(database)
	}); err != nil {
		ui.PrintError(fmt.Sprintf("Failed to load catalog: %v", err))
		os.Exit(1)
	}
	if loadErr != nil {
		ui.PrintError(fmt.Sprintf("Failed to load catalog: %v", loadErr))
		os.Exit(1)
	}

	logger.Info("catalog loaded", "project", selectedDBPath, "missions", data.Catalog.Len())

	if err := ui.RunDashboard(data, selectedDBPath); err != nil {
		ui.PrintError(fmt.Sprintf("Dashboard failed: %v", err))
		os.Exit(1)
	}
}

// loadDashboardData reads the catalog plus the SQL aggregates behind the
// Companies, Statuses, Years and Rockets tabs.
func loadDashboardData(database *db.DB) (ui.DashboardData, error) {
	catalog, err := database.LoadCatalog()
	if err != nil {
		return ui.DashboardData{}, err
	}
	companies, err := database.CompanyLeaderboard()
	if err != nil {
		return ui.DashboardData{}, err
	}
	statuses, err := database.StatusBreakdown()
	if err != nil {
		return ui.DashboardData{}, err
	}
	years, err := database.LaunchesPerYear()
	if err != nil {
		return ui.DashboardData{}, err
	}
	rockets, err := database.RocketLeaderboard()
	if err != nil {
		return ui.DashboardData{}, err
	}
	return ui.DashboardData{
		Catalog:   catalog,
		Companies: companies,
		Statuses:  statuses,
		Years:     years,
		Rockets:   rockets,
	}, nil
}

// importCatalog parses the CSV and writes it into the project inside a
// spinner so large files don't look like a hang.
func importCatalog(database *db.DB, csvPath string, logger *log.Logger) error {
	var importErr error

	err := spinner.New().
		Title(fmt.Sprintf("Importing %s...", filepath.Base(csvPath))).
		Action(func() {
			catalog, err := dataset.Load(csvPath)
			if err != nil {
				importErr = err
				return
			}
			importErr = database.ImportMissions(catalog.Missions())
			if importErr == nil {
				logger.Info("catalog imported", "csv", csvPath, "missions", catalog.Len())
			}
		}).
		Run()
	if err != nil {
		return fmt.Errorf("import spinner error: %w", err)
	}
	if importErr != nil {
		return importErr
	}

	ui.PrintSuccess(fmt.Sprintf("Imported %s", csvPath))
	return nil
}

// newLogger writes app logs to a file next to the project database so the
// TUI stays clean. Falls back to a discarded logger if the file can't open.
func newLogger(dbPath string) *log.Logger {
	logFile := filepath.Join(filepath.Dir(dbPath), "launchdeck.log")

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return log.New(os.Stderr)
	}

	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "launchdeck",
	})
}
