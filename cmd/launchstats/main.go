package main

// launchstats runs one catalog query and prints the answer, for scripting
// and spot checks without the dashboard.
//
// Examples:
//
//	launchstats -csv space_missions.csv -company SpaceX
//	launchstats -db launchdeck.db -top 3
//	launchstats -csv space_missions.csv -start 1957-10-01 -end 1957-12-31
//	launchstats -csv space_missions.csv -from 2010 -to 2020

import (
	"flag"
	"fmt"
	"os"

	"github.com/astrakit/launchdeck/internal/dataset"
	"github.com/astrakit/launchdeck/internal/db"
	"github.com/astrakit/launchdeck/internal/ui"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	csvPath := flag.String("csv", os.Getenv("LAUNCHDECK_CSV"), "Load catalog from a CSV file")
	dbPath := flag.String("db", os.Getenv("LAUNCHDECK_DB"), "Load catalog from a SQLite project file")

	company := flag.String("company", "", "Mission count and success rate for a company")
	start := flag.String("start", "", "Date range start (YYYY-MM-DD), use with -end")
	end := flag.String("end", "", "Date range end (YYYY-MM-DD), use with -start")
	top := flag.Int("top", 0, "Top N companies by mission count")
	statuses := flag.Bool("statuses", false, "Mission status breakdown")
	year := flag.Int("year", 0, "Mission count for a calendar year")
	rocket := flag.Bool("rocket", false, "Most used rocket")
	from := flag.Int("from", 0, "Average missions per year: range start, use with -to")
	to := flag.Int("to", 0, "Average missions per year: range end, use with -from")
	flag.Parse()

	catalog, source, err := loadCatalog(*csvPath, *dbPath)
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}

	ran := false

	if *company != "" {
		ran = true
		count := catalog.MissionCountByCompany(*company)
		fmt.Printf("%s: %d missions\n", *company, count)
		rate, err := catalog.SuccessRate(*company)
		if err != nil {
			fmt.Printf("%s: no success rate (no missions)\n", *company)
		} else {
			fmt.Printf("%s: %.5f%% success rate\n", *company, rate)
		}
	}

	if *start != "" || *end != "" {
		ran = true
		names, err := catalog.MissionsByDateRange(*start, *end)
		if err != nil {
			ui.PrintError(err.Error())
			os.Exit(1)
		}
		ui.PrintMissionList(fmt.Sprintf("Missions %s → %s", *start, *end), names)
	}

	if *top > 0 {
		ran = true
		ranked, err := catalog.TopCompaniesByMissionCount(*top)
		if err != nil {
			ui.PrintError(err.Error())
			os.Exit(1)
		}
		ui.PrintCompanyTable(fmt.Sprintf("Top %d Companies", *top), ranked)
	}

	if *statuses {
		ran = true
		ui.PrintStatusTable(catalog.MissionStatusCount())
	}

	if *year > 0 {
		ran = true
		fmt.Printf("%d: %d missions\n", *year, catalog.MissionsByYear(*year))
	}

	if *rocket {
		ran = true
		name, err := catalog.MostUsedRocket()
		if err != nil {
			ui.PrintError(err.Error())
			os.Exit(1)
		}
		fmt.Printf("Most used rocket: %s\n", name)
	}

	if *from > 0 || *to > 0 {
		ran = true
		if err := checkYearRangeFlags(*from, *to); err != nil {
			ui.PrintError(err.Error())
			os.Exit(1)
		}
		avg, err := catalog.AverageMissionsPerYear(*from, *to)
		if err != nil {
			ui.PrintError(err.Error())
			os.Exit(1)
		}
		fmt.Printf("Average missions per year %d–%d: %.5f\n", *from, *to, avg)
	}

	if !ran {
		// No query flags: print the overview report
		ui.PrintHeader(source, catalog.Len())
		ranked, err := catalog.TopCompaniesByMissionCount(10)
		if err == nil {
			ui.PrintCompanyTable("Top 10 Companies", ranked)
		}
		ui.PrintStatusTable(catalog.MissionStatusCount())
	}
}

// checkYearRangeFlags rejects a half-specified year range with a usage
// message rather than letting the zero year reach the range check.
func checkYearRangeFlags(from, to int) error {
	if from > 0 && to > 0 {
		return nil
	}
	return fmt.Errorf("-from and -to must both be set (got -from %d -to %d)", from, to)
}

// loadCatalog reads the catalog from whichever source was given. CSV wins
// when both are set.
func loadCatalog(csvPath, dbPath string) (*dataset.Catalog, string, error) {
	switch {
	case csvPath != "":
		catalog, err := dataset.Load(csvPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load %s: %w", csvPath, err)
		}
		return catalog, csvPath, nil

	case dbPath != "":
		database, err := db.New(dbPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open %s: %w", dbPath, err)
		}
		defer database.Close()
		catalog, err := database.LoadCatalog()
		if err != nil {
			return nil, "", fmt.Errorf("failed to load catalog from %s: %w", dbPath, err)
		}
		return catalog, dbPath, nil

	default:
		return nil, "", fmt.Errorf("no catalog source: pass -csv or -db (or set LAUNCHDECK_CSV / LAUNCHDECK_DB)")
	}
}
