package db

// Mission names are not unique in the catalog, so the table carries no
// natural key; re-import replaces the whole snapshot instead.
const createMissionsTable = `
CREATE TABLE IF NOT EXISTS missions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    company TEXT NOT NULL,
    launch_date TEXT NOT NULL,
    mission_name TEXT,
    rocket_name TEXT,
    rocket_status TEXT,
    mission_status TEXT
);

CREATE INDEX IF NOT EXISTS idx_missions_company ON missions(company);
CREATE INDEX IF NOT EXISTS idx_missions_date ON missions(launch_date);
CREATE INDEX IF NOT EXISTS idx_missions_rocket ON missions(rocket_name);
`

const deleteMissions = `
DELETE FROM missions
`

const insertMission = `
INSERT INTO missions (
    company, launch_date, mission_name, rocket_name, rocket_status, mission_status
) VALUES (?, ?, ?, ?, ?, ?)
`

const selectMissions = `
SELECT company, launch_date, mission_name, rocket_name, rocket_status, mission_status
FROM missions
ORDER BY id
`

const selectMissionCount = `
SELECT COUNT(*) FROM missions
`

const selectCompanyLeaderboard = `
SELECT
    company,
    COUNT(*) as mission_count
FROM missions
GROUP BY company
ORDER BY mission_count DESC, company ASC
`

const selectStatusBreakdown = `
SELECT
    mission_status,
    COUNT(*) as mission_count
FROM missions
GROUP BY mission_status
`

const selectLaunchesPerYear = `
SELECT
    CAST(strftime('%Y', launch_date) AS INTEGER) as launch_year,
    COUNT(*) as mission_count
FROM missions
GROUP BY launch_year
ORDER BY launch_year ASC
`

const selectRocketLeaderboard = `
SELECT
    rocket_name,
    COUNT(*) as mission_count
FROM missions
GROUP BY rocket_name
ORDER BY mission_count DESC, rocket_name ASC
`
