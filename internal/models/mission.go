package models

import "time"

// MissionStatus is the outcome classification of a launch attempt.
type MissionStatus string

const (
	StatusSuccess          MissionStatus = "Success"
	StatusFailure          MissionStatus = "Failure"
	StatusPartialFailure   MissionStatus = "Partial Failure"
	StatusPrelaunchFailure MissionStatus = "Prelaunch Failure"
)

// AllMissionStatuses lists every valid mission status in display order.
// Status breakdowns must include all of these, even at zero.
var AllMissionStatuses = []MissionStatus{
	StatusSuccess,
	StatusFailure,
	StatusPartialFailure,
	StatusPrelaunchFailure,
}

// Valid reports whether s is one of the four known mission statuses.
func (s MissionStatus) Valid() bool {
	switch s {
	case StatusSuccess, StatusFailure, StatusPartialFailure, StatusPrelaunchFailure:
		return true
	}
	return false
}

// RocketStatus is the lifecycle state of a vehicle family.
type RocketStatus string

const (
	RocketActive  RocketStatus = "Active"
	RocketRetired RocketStatus = "Retired"
)

// Mission is one row of the launch catalog.
type Mission struct {
	Company       string        `json:"company"`
	LaunchDate    time.Time     `json:"launch_date"`
	MissionName   string        `json:"mission_name"`
	RocketName    string        `json:"rocket_name"`
	RocketStatus  RocketStatus  `json:"rocket_status"`
	MissionStatus MissionStatus `json:"mission_status"`
}

// CompanyCount is one entry of a company leaderboard.
type CompanyCount struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

// RocketCount is one entry of a rocket usage ranking.
type RocketCount struct {
	Rocket string `json:"rocket"`
	Count  int    `json:"count"`
}

// YearCount is the number of launches in one calendar year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}
