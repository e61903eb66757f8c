package dataset

import (
	"errors"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/astrakit/launchdeck/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// fixtureCatalog mirrors the shape of the real dataset at small scale:
// one dominant company, a tie lower down, and the three 1957 launches.
func fixtureCatalog() *Catalog {
	return NewCatalog([]models.Mission{
		{Company: "RVSN USSR", LaunchDate: date("1957-10-04"), MissionName: "Sputnik-1", RocketName: "Sputnik 8K71PS", RocketStatus: models.RocketRetired, MissionStatus: models.StatusSuccess},
		{Company: "RVSN USSR", LaunchDate: date("1957-11-03"), MissionName: "Sputnik-2", RocketName: "Sputnik 8K71PS", RocketStatus: models.RocketRetired, MissionStatus: models.StatusSuccess},
		{Company: "US Navy", LaunchDate: date("1957-12-06"), MissionName: "Vanguard TV3", RocketName: "Vanguard", RocketStatus: models.RocketRetired, MissionStatus: models.StatusFailure},
		{Company: "RVSN USSR", LaunchDate: date("1964-06-04"), MissionName: "Cosmos-33", RocketName: "Cosmos-3M (11K65M)", RocketStatus: models.RocketRetired, MissionStatus: models.StatusSuccess},
		{Company: "RVSN USSR", LaunchDate: date("1965-03-15"), MissionName: "Cosmos-61", RocketName: "Cosmos-3M (11K65M)", RocketStatus: models.RocketRetired, MissionStatus: models.StatusPartialFailure},
		{Company: "SpaceX", LaunchDate: date("2020-01-07"), MissionName: "Starlink V1 L2", RocketName: "Falcon 9 Block 5", RocketStatus: models.RocketActive, MissionStatus: models.StatusSuccess},
		{Company: "SpaceX", LaunchDate: date("2020-06-13"), MissionName: "Starlink V1 L8", RocketName: "Falcon 9 Block 5", RocketStatus: models.RocketActive, MissionStatus: models.StatusSuccess},
		{Company: "SpaceX", LaunchDate: date("2021-05-09"), MissionName: "Starlink V1 L27", RocketName: "Falcon 9 Block 5", RocketStatus: models.RocketActive, MissionStatus: models.StatusSuccess},
		{Company: "CASC", LaunchDate: date("2020-11-06"), MissionName: "NewSat 9-18", RocketName: "Long March 6", RocketStatus: models.RocketActive, MissionStatus: models.StatusSuccess},
		{Company: "CASC", LaunchDate: date("2021-03-11"), MissionName: "Tianzhou-2 rehearsal", RocketName: "Long March 7", RocketStatus: models.RocketActive, MissionStatus: models.StatusPrelaunchFailure},
		{Company: "Arianespace", LaunchDate: date("2020-02-18"), MissionName: "JCSAT-17 & GEO-KOMPSAT-2B", RocketName: "Ariane 5 ECA", RocketStatus: models.RocketRetired, MissionStatus: models.StatusSuccess},
		{Company: "Arianespace", LaunchDate: date("2021-07-30"), MissionName: "Star One D2 & Eutelsat Quantum", RocketName: "Ariane 5 ECA", RocketStatus: models.RocketRetired, MissionStatus: models.StatusFailure},
	})
}

func TestMissionCountByCompany(t *testing.T) {
	c := fixtureCatalog()

	tests := []struct {
		company string
		want    int
	}{
		{"RVSN USSR", 4},
		{"SpaceX", 3},
		{"US Navy", 1},
		{"spacex", 0}, // case-sensitive
		{"Blue Origin", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.company, func(t *testing.T) {
			if got := c.MissionCountByCompany(tt.company); got != tt.want {
				t.Errorf("MissionCountByCompany(%q) = %d, want %d", tt.company, got, tt.want)
			}
		})
	}
}

func TestSuccessRate(t *testing.T) {
	c := fixtureCatalog()

	tests := []struct {
		company string
		want    float64
		wantErr error
	}{
		{company: "SpaceX", want: 100},
		{company: "RVSN USSR", want: 75}, // partial failure is not a success
		{company: "US Navy", want: 0},
		{company: "CASC", want: 50},
		{company: "Nonexistent", wantErr: ErrNoMissions},
	}

	for _, tt := range tests {
		t.Run(tt.company, func(t *testing.T) {
			got, err := c.SuccessRate(tt.company)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SuccessRate(%q) error = %v, want %v", tt.company, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SuccessRate(%q) unexpected error: %v", tt.company, err)
			}
			if got != tt.want {
				t.Errorf("SuccessRate(%q) = %v, want %v", tt.company, got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("SuccessRate(%q) = %v, outside [0, 100]", tt.company, got)
			}
		})
	}
}

func TestSuccessRateRounding(t *testing.T) {
	// 1/3 of missions succeed: rate must come back as 33.33333, not the
	// full float expansion.
	c := NewCatalog([]models.Mission{
		{Company: "X", LaunchDate: date("2000-01-01"), MissionStatus: models.StatusSuccess, RocketStatus: models.RocketActive},
		{Company: "X", LaunchDate: date("2000-02-01"), MissionStatus: models.StatusFailure, RocketStatus: models.RocketActive},
		{Company: "X", LaunchDate: date("2000-03-01"), MissionStatus: models.StatusFailure, RocketStatus: models.RocketActive},
	})

	got, err := c.SuccessRate("X")
	if err != nil {
		t.Fatal(err)
	}
	if got != 33.33333 {
		t.Errorf("SuccessRate = %v, want 33.33333", got)
	}
}

func TestMissionsByDateRange(t *testing.T) {
	c := fixtureCatalog()

	t.Run("1957 launches in order", func(t *testing.T) {
		got, err := c.MissionsByDateRange("1957-10-01", "1957-12-31")
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"Sputnik-1", "Sputnik-2", "Vanguard TV3"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("MissionsByDateRange = %v, want %v", got, want)
		}
	})

	t.Run("inclusive bounds", func(t *testing.T) {
		got, err := c.MissionsByDateRange("1957-10-04", "1957-10-04")
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0] != "Sputnik-1" {
			t.Errorf("MissionsByDateRange = %v, want [Sputnik-1]", got)
		}
	})

	t.Run("empty range", func(t *testing.T) {
		got, err := c.MissionsByDateRange("1980-01-01", "1980-12-31")
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 0 {
			t.Errorf("MissionsByDateRange = %v, want empty", got)
		}
	})

	t.Run("malformed dates", func(t *testing.T) {
		if _, err := c.MissionsByDateRange("not-a-date", "1957-12-31"); err == nil {
			t.Error("expected error for malformed start date")
		}
		if _, err := c.MissionsByDateRange("1957-10-01", "31/12/1957"); err == nil {
			t.Error("expected error for malformed end date")
		}
	})
}

func TestTopCompaniesByMissionCount(t *testing.T) {
	c := fixtureCatalog()

	t.Run("top three", func(t *testing.T) {
		got, err := c.TopCompaniesByMissionCount(3)
		if err != nil {
			t.Fatal(err)
		}
		want := []models.CompanyCount{
			{Company: "RVSN USSR", Count: 4},
			{Company: "SpaceX", Count: 3},
			{Company: "Arianespace", Count: 2}, // ties with CASC, alphabetical wins
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("TopCompaniesByMissionCount(3) = %v, want %v", got, want)
		}
	})

	t.Run("n exceeds distinct companies", func(t *testing.T) {
		got, err := c.TopCompaniesByMissionCount(100)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 5 {
			t.Errorf("got %d companies, want all 5", len(got))
		}
	})

	t.Run("non-positive n", func(t *testing.T) {
		for _, n := range []int{0, -1} {
			if _, err := c.TopCompaniesByMissionCount(n); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("TopCompaniesByMissionCount(%d) error = %v, want ErrInvalidRange", n, err)
			}
		}
	})

	t.Run("tie broken alphabetically", func(t *testing.T) {
		got, err := c.TopCompaniesByMissionCount(5)
		if err != nil {
			t.Fatal(err)
		}
		// Arianespace and CASC both have 2 missions.
		if got[2].Company != "Arianespace" || got[3].Company != "CASC" {
			t.Errorf("tie order = %s, %s; want Arianespace, CASC", got[2].Company, got[3].Company)
		}
	})
}

func TestMissionStatusCount(t *testing.T) {
	c := fixtureCatalog()

	got := c.MissionStatusCount()
	want := map[models.MissionStatus]int{
		models.StatusSuccess:          8,
		models.StatusFailure:          2,
		models.StatusPartialFailure:   1,
		models.StatusPrelaunchFailure: 1,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MissionStatusCount = %v, want %v", got, want)
	}

	// Counts must always sum to the catalog size.
	sum := 0
	for _, n := range got {
		sum += n
	}
	if sum != c.Len() {
		t.Errorf("status counts sum to %d, want %d", sum, c.Len())
	}
}

func TestMissionStatusCountEmptyCatalog(t *testing.T) {
	got := NewCatalog(nil).MissionStatusCount()
	if len(got) != len(models.AllMissionStatuses) {
		t.Fatalf("got %d statuses, want %d", len(got), len(models.AllMissionStatuses))
	}
	for status, n := range got {
		if n != 0 {
			t.Errorf("status %q count = %d, want 0", status, n)
		}
	}
}

func TestMissionsByYear(t *testing.T) {
	c := fixtureCatalog()

	tests := []struct {
		year int
		want int
	}{
		{1957, 3},
		{2020, 4},
		{2021, 3},
		{1980, 0},
		{1850, 0}, // before the dataset span
		{2999, 0},
	}

	for _, tt := range tests {
		if got := c.MissionsByYear(tt.year); got != tt.want {
			t.Errorf("MissionsByYear(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

func TestMostUsedRocket(t *testing.T) {
	c := fixtureCatalog()

	got, err := c.MostUsedRocket()
	if err != nil {
		t.Fatal(err)
	}
	if got != "Falcon 9 Block 5" {
		t.Errorf("MostUsedRocket = %q, want %q", got, "Falcon 9 Block 5")
	}
}

func TestMostUsedRocketTieBreak(t *testing.T) {
	c := NewCatalog([]models.Mission{
		{Company: "A", LaunchDate: date("2000-01-01"), RocketName: "Zenit", RocketStatus: models.RocketRetired, MissionStatus: models.StatusSuccess},
		{Company: "A", LaunchDate: date("2000-02-01"), RocketName: "Atlas V", RocketStatus: models.RocketActive, MissionStatus: models.StatusSuccess},
	})

	got, err := c.MostUsedRocket()
	if err != nil {
		t.Fatal(err)
	}
	if got != "Atlas V" {
		t.Errorf("MostUsedRocket tie = %q, want alphabetical first %q", got, "Atlas V")
	}
}

func TestMostUsedRocketEmptyCatalog(t *testing.T) {
	if _, err := NewCatalog(nil).MostUsedRocket(); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("MostUsedRocket on empty catalog error = %v, want ErrEmptyCatalog", err)
	}
}

func TestAverageMissionsPerYear(t *testing.T) {
	c := fixtureCatalog()

	tests := []struct {
		name       string
		start, end int
		want       float64
		wantErr    error
	}{
		{name: "multi-year", start: 2020, end: 2021, want: 3.5},
		{name: "gap years count toward divisor", start: 1957, end: 1965, want: 0.55556},
		{name: "no missions in range", start: 1990, end: 1999, want: 0},
		{name: "inverted range", start: 2021, end: 2020, wantErr: ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.AverageMissionsPerYear(tt.start, tt.end)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("AverageMissionsPerYear(%d, %d) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

// TestSingleYearAverageMatchesYearCount checks the range-of-one identity:
// the average over [y, y] equals the plain count for y.
func TestSingleYearAverageMatchesYearCount(t *testing.T) {
	c := fixtureCatalog()

	for _, year := range []int{1957, 1980, 2020, 2021} {
		avg, err := c.AverageMissionsPerYear(year, year)
		if err != nil {
			t.Fatal(err)
		}
		if want := float64(c.MissionsByYear(year)); avg != want {
			t.Errorf("AverageMissionsPerYear(%d, %d) = %v, want %v", year, year, avg, want)
		}
	}
}

// TestCountConsistency checks that the per-company count agrees with a full
// date-range scan filtered to that company.
func TestCountConsistency(t *testing.T) {
	c := fixtureCatalog()

	perCompany := make(map[string]int)
	for _, m := range c.Missions() {
		perCompany[m.Company]++
	}

	for company, want := range perCompany {
		if got := c.MissionCountByCompany(company); got != want {
			t.Errorf("MissionCountByCompany(%q) = %d, want %d", company, got, want)
		}
	}
}

// TestFullDatasetScenarios checks the documented answers against the real
// catalog. Skipped unless LAUNCHDECK_CSV points at the full dataset.
// Run with: LAUNCHDECK_CSV=space_missions.csv go test -run TestFullDataset ./internal/dataset/
func TestFullDatasetScenarios(t *testing.T) {
	path := os.Getenv("LAUNCHDECK_CSV")
	if path == "" {
		t.Skip("LAUNCHDECK_CSV not set; skipping full-dataset scenarios")
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load %s: %v", path, err)
	}

	if got := c.MissionCountByCompany("SpaceX"); got != 182 {
		t.Errorf("MissionCountByCompany(SpaceX) = %d, want 182", got)
	}

	rate, err := c.SuccessRate("SpaceX")
	if err != nil {
		t.Fatal(err)
	}
	if rate != 94.50549 {
		t.Errorf("SuccessRate(SpaceX) = %v, want 94.50549", rate)
	}

	names, err := c.MissionsByDateRange("1957-10-01", "1957-12-31")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Sputnik-1", "Sputnik-2", "Vanguard TV3"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("MissionsByDateRange(1957) = %v, want %v", names, want)
	}

	top, err := c.TopCompaniesByMissionCount(3)
	if err != nil {
		t.Fatal(err)
	}
	wantTop := []models.CompanyCount{
		{Company: "RVSN USSR", Count: 1777},
		{Company: "CASC", Count: 338},
		{Company: "Arianespace", Count: 293},
	}
	if !reflect.DeepEqual(top, wantTop) {
		t.Errorf("TopCompaniesByMissionCount(3) = %v, want %v", top, wantTop)
	}

	if got := c.MissionsByYear(2020); got != 119 {
		t.Errorf("MissionsByYear(2020) = %d, want 119", got)
	}

	rocket, err := c.MostUsedRocket()
	if err != nil {
		t.Fatal(err)
	}
	if rocket != "Cosmos-3M (11K65M)" {
		t.Errorf("MostUsedRocket = %q, want Cosmos-3M (11K65M)", rocket)
	}

	avg, err := c.AverageMissionsPerYear(2010, 2020)
	if err != nil {
		t.Fatal(err)
	}
	if avg != 72.27273 {
		t.Errorf("AverageMissionsPerYear(2010, 2020) = %v, want 72.27273", avg)
	}
}
