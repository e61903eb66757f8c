package dataset

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/astrakit/launchdeck/internal/models"
)

// Sentinel errors surfaced by the query functions. Callers branch on these
// with errors.Is; empty results are never reported through them.
var (
	// ErrNoMissions is returned when a rate is requested for a company
	// that has no rows in the catalog.
	ErrNoMissions = errors.New("company has no missions")

	// ErrEmptyCatalog is returned by rankings that are undefined on an
	// empty catalog.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrInvalidRange is returned for a non-positive ranking size or an
	// inverted year range.
	ErrInvalidRange = errors.New("invalid range")
)

// dateLayout is the wire format for date-range query bounds.
const dateLayout = "2006-01-02"

// Catalog is the launch dataset: an ordered, read-only sequence of missions.
// It is built once by Load (or db.LoadCatalog) and never mutated afterwards,
// so it is safe to share across goroutines without locking.
type Catalog struct {
	missions []models.Mission
}

// NewCatalog wraps a slice of missions. The catalog takes ownership of the
// slice; callers must not modify it afterwards.
func NewCatalog(missions []models.Mission) *Catalog {
	return &Catalog{missions: missions}
}

// Len returns the total number of missions in the catalog.
func (c *Catalog) Len() int {
	return len(c.missions)
}

// Missions returns the underlying rows in catalog order. The returned slice
// is the catalog's own storage and must be treated as read-only.
func (c *Catalog) Missions() []models.Mission {
	return c.missions
}

// MissionCountByCompany returns the number of missions whose company field
// exactly matches company. Matching is case-sensitive; an unknown company
// yields 0, not an error.
func (c *Catalog) MissionCountByCompany(company string) int {
	count := 0
	for _, m := range c.missions {
		if m.Company == company {
			count++
		}
	}
	return count
}

// SuccessRate returns the percentage of a company's missions with status
// Success, rounded to 5 decimal places. Only "Success" counts; partial
// failures do not. Returns ErrNoMissions when the company has no rows so the
// zero-mission case is never confused with a genuine 0% rate.
func (c *Catalog) SuccessRate(company string) (float64, error) {
	total := 0
	successes := 0
	for _, m := range c.missions {
		if m.Company != company {
			continue
		}
		total++
		if m.MissionStatus == models.StatusSuccess {
			successes++
		}
	}
	if total == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoMissions, company)
	}
	rate := float64(successes) / float64(total) * 100
	return round5(rate), nil
}

// MissionsByDateRange returns the names of missions launched between start
// and end inclusive, both in YYYY-MM-DD form, ordered chronologically with
// catalog order preserved among same-day launches. Malformed bounds surface
// as parse errors; an empty result is a nil slice, not an error.
func (c *Catalog) MissionsByDateRange(start, end string) ([]string, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", end, err)
	}

	var matched []models.Mission
	for _, m := range c.missions {
		if m.LaunchDate.Before(startDate) || m.LaunchDate.After(endDate) {
			continue
		}
		matched = append(matched, m)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].LaunchDate.Before(matched[j].LaunchDate)
	})

	var names []string
	for _, m := range matched {
		names = append(names, m.MissionName)
	}
	return names, nil
}

// TopCompaniesByMissionCount returns the n companies with the most missions,
// sorted by count descending. Ties are broken alphabetically ascending so the
// ranking is reproducible. If n exceeds the number of distinct companies, all
// of them are returned. n must be positive.
func (c *Catalog) TopCompaniesByMissionCount(n int) ([]models.CompanyCount, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n must be positive, got %d", ErrInvalidRange, n)
	}

	counts := make(map[string]int)
	for _, m := range c.missions {
		counts[m.Company]++
	}

	ranked := make([]models.CompanyCount, 0, len(counts))
	for company, count := range counts {
		ranked = append(ranked, models.CompanyCount{Company: company, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Company < ranked[j].Company
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// MissionStatusCount returns the number of missions per status across the
// whole catalog. All four statuses are always present in the result, at zero
// if absent from the data.
func (c *Catalog) MissionStatusCount() map[models.MissionStatus]int {
	counts := make(map[models.MissionStatus]int, len(models.AllMissionStatuses))
	for _, status := range models.AllMissionStatuses {
		counts[status] = 0
	}
	for _, m := range c.missions {
		counts[m.MissionStatus]++
	}
	return counts
}

// MissionsByYear returns the number of missions launched in the given
// calendar year. Years with no launches, including years outside the
// catalog's span, yield 0.
func (c *Catalog) MissionsByYear(year int) int {
	count := 0
	for _, m := range c.missions {
		if m.LaunchDate.Year() == year {
			count++
		}
	}
	return count
}

// MostUsedRocket returns the rocket name with the highest launch count. Ties
// are broken alphabetically ascending. Fails only on an empty catalog.
func (c *Catalog) MostUsedRocket() (string, error) {
	if len(c.missions) == 0 {
		return "", ErrEmptyCatalog
	}

	counts := make(map[string]int)
	for _, m := range c.missions {
		counts[m.RocketName]++
	}

	best := ""
	bestCount := 0
	for rocket, count := range counts {
		if count > bestCount || (count == bestCount && rocket < best) {
			best = rocket
			bestCount = count
		}
	}
	return best, nil
}

// AverageMissionsPerYear returns the mean number of missions per calendar
// year over [startYear, endYear] inclusive, rounded to 5 decimal places.
// Years inside the range with no launches still count toward the divisor.
// An inverted range returns ErrInvalidRange; a range with no missions at all
// returns 0.
func (c *Catalog) AverageMissionsPerYear(startYear, endYear int) (float64, error) {
	if startYear > endYear {
		return 0, fmt.Errorf("%w: start year %d after end year %d", ErrInvalidRange, startYear, endYear)
	}

	total := 0
	for _, m := range c.missions {
		year := m.LaunchDate.Year()
		if year >= startYear && year <= endYear {
			total++
		}
	}
	years := endYear - startYear + 1
	return round5(float64(total) / float64(years)), nil
}

// round5 rounds to 5 decimal places, half away from zero. Both percentage
// and average results use this single rule.
func round5(v float64) float64 {
	return math.Round(v*1e5) / 1e5
}
