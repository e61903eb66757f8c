package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/astrakit/launchdeck/internal/models"
)

// Column headers the loader understands. Extra columns (location, price, ...)
// are ignored so exports of the upstream Kaggle dataset load unchanged.
const (
	colCompany       = "Company"
	colDate          = "Date"
	colMission       = "Mission"
	colRocket        = "Rocket"
	colRocketStatus  = "RocketStatus"
	colMissionStatus = "MissionStatus"
)

// launchDateFormats are tried in order when parsing the Date column.
// The cleaned dataset uses plain dates; raw exports carry a weekday prefix
// or a full timestamp.
var launchDateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"Mon Jan 02, 2006",
}

// Load reads a launch catalog from a CSV file. The first row must be a
// header naming at least the Company, Date, Mission, Rocket, RocketStatus
// and MissionStatus columns, in any order. Rows with a missing company or
// an unparseable date or status fail the load with the offending line number;
// the catalog is all-or-nothing.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a launch catalog from r. See Load.
func Read(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ReplaceAll(strings.TrimSpace(h), `"`, "")
		cols[name] = i
	}
	for _, required := range []string{colCompany, colDate, colMission, colRocket, colRocketStatus, colMissionStatus} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("catalog header missing %q column", required)
		}
	}

	var missions []models.Mission
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog row: %w", err)
		}
		line++

		m, err := parseMission(record, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		missions = append(missions, m)
	}

	return NewCatalog(missions), nil
}

func parseMission(record []string, cols map[string]int) (models.Mission, error) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	company := field(colCompany)
	if company == "" {
		return models.Mission{}, fmt.Errorf("missing company")
	}

	date, err := parseLaunchDate(field(colDate))
	if err != nil {
		return models.Mission{}, err
	}

	status := models.MissionStatus(field(colMissionStatus))
	if !status.Valid() {
		return models.Mission{}, fmt.Errorf("unknown mission status %q", field(colMissionStatus))
	}

	rocketStatus := models.RocketStatus(field(colRocketStatus))
	if rocketStatus != models.RocketActive && rocketStatus != models.RocketRetired {
		return models.Mission{}, fmt.Errorf("unknown rocket status %q", field(colRocketStatus))
	}

	return models.Mission{
		Company:       company,
		LaunchDate:    date,
		MissionName:   field(colMission),
		RocketName:    field(colRocket),
		RocketStatus:  rocketStatus,
		MissionStatus: status,
	}, nil
}

// parseLaunchDate tries each known date format in order.
func parseLaunchDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing launch date")
	}
	for _, format := range launchDateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse launch date %q", s)
}
