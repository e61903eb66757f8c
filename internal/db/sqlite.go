package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/astrakit/launchdeck/internal/dataset"
	"github.com/astrakit/launchdeck/internal/models"

	_ "modernc.org/sqlite"
)

// launchDateFormat is how dates are stored in the missions table. Plain ISO
// dates keep strftime() and string comparison correct.
const launchDateFormat = "2006-01-02"

// DB wraps the SQLite project database
type DB struct {
	conn *sql.DB
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := conn.Exec(createMissionsTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create missions schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// ListProjectFiles returns a list of .db files in the given directory
func ListProjectFiles(dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var projects []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) == ".db" {
			projects = append(projects, name)
		}
	}
	return projects, nil
}

// ImportMissions replaces the stored catalog with the given rows in one
// transaction. Clearing first keeps re-import idempotent without a unique
// key, so distinct missions sharing a name and date all survive.
func (db *DB) ImportMissions(missions []models.Mission) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(deleteMissions); err != nil {
		return fmt.Errorf("failed to clear missions: %w", err)
	}

	stmt, err := tx.Prepare(insertMission)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, m := range missions {
		_, err := stmt.Exec(
			m.Company,
			m.LaunchDate.Format(launchDateFormat),
			m.MissionName,
			m.RocketName,
			string(m.RocketStatus),
			string(m.MissionStatus),
		)
		if err != nil {
			return fmt.Errorf("failed to insert mission %q: %w", m.MissionName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// LoadCatalog reads every mission back in insertion order and wraps them in
// an immutable catalog for the query layer.
func (db *DB) LoadCatalog() (*dataset.Catalog, error) {
	rows, err := db.conn.Query(selectMissions)
	if err != nil {
		return nil, fmt.Errorf("failed to query missions: %w", err)
	}
	defer rows.Close()

	var missions []models.Mission
	for rows.Next() {
		var m models.Mission
		var launchDate, rocketStatus, missionStatus string
		if err := rows.Scan(&m.Company, &launchDate, &m.MissionName, &m.RocketName, &rocketStatus, &missionStatus); err != nil {
			return nil, fmt.Errorf("failed to scan mission: %w", err)
		}
		m.LaunchDate, err = time.Parse(launchDateFormat, launchDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse launch date %q: %w", launchDate, err)
		}
		m.RocketStatus = models.RocketStatus(rocketStatus)
		m.MissionStatus = models.MissionStatus(missionStatus)
		missions = append(missions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read missions: %w", err)
	}

	return dataset.NewCatalog(missions), nil
}

// MissionCount returns the total number of missions stored
func (db *DB) MissionCount() (int, error) {
	var total int
	err := db.conn.QueryRow(selectMissionCount).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count missions: %w", err)
	}
	return total, nil
}

// CompanyLeaderboard returns per-company mission counts, busiest first,
// ties alphabetical
func (db *DB) CompanyLeaderboard() ([]models.CompanyCount, error) {
	rows, err := db.conn.Query(selectCompanyLeaderboard)
	if err != nil {
		return nil, fmt.Errorf("failed to query company leaderboard: %w", err)
	}
	defer rows.Close()

	var leaderboard []models.CompanyCount
	for rows.Next() {
		var c models.CompanyCount
		if err := rows.Scan(&c.Company, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		leaderboard = append(leaderboard, c)
	}
	return leaderboard, rows.Err()
}

// StatusBreakdown returns mission counts per status. Statuses absent from
// the data are filled in at zero so all four always appear.
func (db *DB) StatusBreakdown() (map[models.MissionStatus]int, error) {
	rows, err := db.conn.Query(selectStatusBreakdown)
	if err != nil {
		return nil, fmt.Errorf("failed to query status breakdown: %w", err)
	}
	defer rows.Close()

	breakdown := make(map[models.MissionStatus]int, len(models.AllMissionStatuses))
	for _, status := range models.AllMissionStatuses {
		breakdown[status] = 0
	}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status row: %w", err)
		}
		breakdown[models.MissionStatus(status)] = count
	}
	return breakdown, rows.Err()
}

// LaunchesPerYear returns mission counts per calendar year, earliest first
func (db *DB) LaunchesPerYear() ([]models.YearCount, error) {
	rows, err := db.conn.Query(selectLaunchesPerYear)
	if err != nil {
		return nil, fmt.Errorf("failed to query launches per year: %w", err)
	}
	defer rows.Close()

	var years []models.YearCount
	for rows.Next() {
		var y models.YearCount
		if err := rows.Scan(&y.Year, &y.Count); err != nil {
			return nil, fmt.Errorf("failed to scan year row: %w", err)
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

// RocketLeaderboard returns per-rocket mission counts, most used first,
// ties alphabetical
func (db *DB) RocketLeaderboard() ([]models.RocketCount, error) {
	rows, err := db.conn.Query(selectRocketLeaderboard)
	if err != nil {
		return nil, fmt.Errorf("failed to query rocket leaderboard: %w", err)
	}
	defer rows.Close()

	var leaderboard []models.RocketCount
	for rows.Next() {
		var r models.RocketCount
		if err := rows.Scan(&r.Rocket, &r.Count); err != nil {
			return nil, fmt.Errorf("failed to scan rocket row: %w", err)
		}
		leaderboard = append(leaderboard, r)
	}
	return leaderboard, rows.Err()
}

// HasMissions checks whether the project already holds an imported catalog
func (db *DB) HasMissions() (bool, error) {
	count, err := db.MissionCount()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
