package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/astrakit/launchdeck/internal/models"
)

func testMissions() []models.Mission {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	return []models.Mission{
		{Company: "RVSN USSR", LaunchDate: day("1957-10-04"), MissionName: "Sputnik-1", RocketName: "Sputnik 8K71PS", RocketStatus: models.RocketRetired, MissionStatus: models.StatusSuccess},
		{Company: "RVSN USSR", LaunchDate: day("1957-11-03"), MissionName: "Sputnik-2", RocketName: "Sputnik 8K71PS", RocketStatus: models.RocketRetired, MissionStatus: models.StatusSuccess},
		{Company: "US Navy", LaunchDate: day("1957-12-06"), MissionName: "Vanguard TV3", RocketName: "Vanguard", RocketStatus: models.RocketRetired, MissionStatus: models.StatusFailure},
		{Company: "SpaceX", LaunchDate: day("2020-01-07"), MissionName: "Starlink V1 L2", RocketName: "Falcon 9 Block 5", RocketStatus: models.RocketActive, MissionStatus: models.StatusSuccess},
	}
}

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := New(filepath.Join(t.TempDir(), "test-project.db"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestImportAndLoadCatalog(t *testing.T) {
	database := openTestDB(t)

	if err := database.ImportMissions(testMissions()); err != nil {
		t.Fatalf("ImportMissions() error: %v", err)
	}

	catalog, err := database.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}

	if catalog.Len() != 4 {
		t.Fatalf("catalog.Len() = %d, want 4", catalog.Len())
	}

	// Insertion order survives the round trip.
	first := catalog.Missions()[0]
	if first.MissionName != "Sputnik-1" {
		t.Errorf("first mission = %q, want Sputnik-1", first.MissionName)
	}
	if first.LaunchDate.Format("2006-01-02") != "1957-10-04" {
		t.Errorf("first launch date = %s, want 1957-10-04", first.LaunchDate.Format("2006-01-02"))
	}
	if first.MissionStatus != models.StatusSuccess {
		t.Errorf("first status = %q, want Success", first.MissionStatus)
	}
}

func TestImportIsIdempotent(t *testing.T) {
	database := openTestDB(t)

	for i := 0; i < 2; i++ {
		if err := database.ImportMissions(testMissions()); err != nil {
			t.Fatalf("ImportMissions() run %d error: %v", i+1, err)
		}
	}

	count, err := database.MissionCount()
	if err != nil {
		t.Fatal(err)
	}
	if count != 4 {
		t.Errorf("MissionCount() after double import = %d, want 4", count)
	}
}

func TestImportKeepsSameNamedMissions(t *testing.T) {
	database := openTestDB(t)

	day, _ := time.Parse("2006-01-02", "1966-02-03")
	// Two distinct launches can share company, mission name and date.
	missions := []models.Mission{
		{Company: "RVSN USSR", LaunchDate: day, MissionName: "Cosmos", RocketName: "Cosmos-2I (63SM)", RocketStatus: models.RocketRetired, MissionStatus: models.StatusSuccess},
		{Company: "RVSN USSR", LaunchDate: day, MissionName: "Cosmos", RocketName: "Cosmos-3 (11K65)", RocketStatus: models.RocketRetired, MissionStatus: models.StatusFailure},
	}
	if err := database.ImportMissions(missions); err != nil {
		t.Fatalf("ImportMissions() error: %v", err)
	}

	count, err := database.MissionCount()
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("MissionCount() = %d, want 2", count)
	}

	catalog, err := database.LoadCatalog()
	if err != nil {
		t.Fatal(err)
	}
	if got := catalog.Missions()[1].RocketName; got != "Cosmos-3 (11K65)" {
		t.Errorf("second mission rocket = %q, want Cosmos-3 (11K65)", got)
	}
}

func TestImportReplacesStoredCatalog(t *testing.T) {
	database := openTestDB(t)

	if err := database.ImportMissions(testMissions()); err != nil {
		t.Fatal(err)
	}
	// A second import is a full replacement, not a merge.
	if err := database.ImportMissions(testMissions()[:1]); err != nil {
		t.Fatal(err)
	}

	count, err := database.MissionCount()
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("MissionCount() after re-import = %d, want 1", count)
	}
}

func TestCompanyLeaderboard(t *testing.T) {
	database := openTestDB(t)
	if err := database.ImportMissions(testMissions()); err != nil {
		t.Fatal(err)
	}

	leaderboard, err := database.CompanyLeaderboard()
	if err != nil {
		t.Fatalf("CompanyLeaderboard() error: %v", err)
	}

	if len(leaderboard) != 3 {
		t.Fatalf("got %d companies, want 3", len(leaderboard))
	}
	if leaderboard[0].Company != "RVSN USSR" || leaderboard[0].Count != 2 {
		t.Errorf("top company = %+v, want RVSN USSR with 2", leaderboard[0])
	}
	// SpaceX and US Navy tie at 1; alphabetical order breaks it.
	if leaderboard[1].Company != "SpaceX" || leaderboard[2].Company != "US Navy" {
		t.Errorf("tie order = %s, %s; want SpaceX, US Navy", leaderboard[1].Company, leaderboard[2].Company)
	}
}

func TestStatusBreakdownIncludesAllStatuses(t *testing.T) {
	database := openTestDB(t)
	if err := database.ImportMissions(testMissions()); err != nil {
		t.Fatal(err)
	}

	breakdown, err := database.StatusBreakdown()
	if err != nil {
		t.Fatalf("StatusBreakdown() error: %v", err)
	}

	if len(breakdown) != len(models.AllMissionStatuses) {
		t.Fatalf("got %d statuses, want %d", len(breakdown), len(models.AllMissionStatuses))
	}
	if breakdown[models.StatusSuccess] != 3 {
		t.Errorf("Success = %d, want 3", breakdown[models.StatusSuccess])
	}
	if breakdown[models.StatusFailure] != 1 {
		t.Errorf("Failure = %d, want 1", breakdown[models.StatusFailure])
	}
	if breakdown[models.StatusPartialFailure] != 0 {
		t.Errorf("Partial Failure = %d, want 0", breakdown[models.StatusPartialFailure])
	}
	if breakdown[models.StatusPrelaunchFailure] != 0 {
		t.Errorf("Prelaunch Failure = %d, want 0", breakdown[models.StatusPrelaunchFailure])
	}
}

func TestLaunchesPerYear(t *testing.T) {
	database := openTestDB(t)
	if err := database.ImportMissions(testMissions()); err != nil {
		t.Fatal(err)
	}

	years, err := database.LaunchesPerYear()
	if err != nil {
		t.Fatalf("LaunchesPerYear() error: %v", err)
	}

	if len(years) != 2 {
		t.Fatalf("got %d years, want 2", len(years))
	}
	if years[0].Year != 1957 || years[0].Count != 3 {
		t.Errorf("years[0] = %+v, want 1957 with 3", years[0])
	}
	if years[1].Year != 2020 || years[1].Count != 1 {
		t.Errorf("years[1] = %+v, want 2020 with 1", years[1])
	}
}

func TestRocketLeaderboard(t *testing.T) {
	database := openTestDB(t)
	if err := database.ImportMissions(testMissions()); err != nil {
		t.Fatal(err)
	}

	rockets, err := database.RocketLeaderboard()
	if err != nil {
		t.Fatalf("RocketLeaderboard() error: %v", err)
	}

	if rockets[0].Rocket != "Sputnik 8K71PS" || rockets[0].Count != 2 {
		t.Errorf("top rocket = %+v, want Sputnik 8K71PS with 2", rockets[0])
	}
}

func TestHasMissions(t *testing.T) {
	database := openTestDB(t)

	has, err := database.HasMissions()
	if err != nil {
		t.Fatal(err)
	}
	if has {
		t.Error("HasMissions() = true on empty project")
	}

	if err := database.ImportMissions(testMissions()); err != nil {
		t.Fatal(err)
	}

	has, err = database.HasMissions()
	if err != nil {
		t.Fatal(err)
	}
	if !has {
		t.Error("HasMissions() = false after import")
	}
}
