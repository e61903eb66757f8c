package ui

// dashboard.go is the main tabbed view over a launch catalog: company
// leaderboard, status breakdown, launches per year, rocket usage, and the
// raw mission table with date-range filtering.

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/astrakit/launchdeck/internal/dataset"
	"github.com/astrakit/launchdeck/internal/models"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// DashboardData carries the in-memory catalog plus the aggregates the tab
// tables render. The aggregates come straight from the project database's
// GROUP BY queries so the dashboard shows exactly what is stored.
type DashboardData struct {
	Catalog   *dataset.Catalog
	Companies []models.CompanyCount
	Statuses  map[models.MissionStatus]int
	Years     []models.YearCount
	Rockets   []models.RocketCount
}

// dashboardAction is what the user asked for when the program exited.
// Forms cannot run inside an active program, so the dashboard quits with a
// pending action and RunDashboard handles it before relaunching.
type dashboardAction int

const (
	actionQuit dashboardAction = iota
	actionFilterMissions
	actionClearFilter
	actionCompanyLookup
	actionExportTab
	actionBackup
)

var tabNames = []string{"Companies", "Statuses", "Years", "Rockets", "Missions"}

// DashboardModel drives the tabbed catalog view
type DashboardModel struct {
	PageState
	data    DashboardData
	project string
	tables  []table.Model
	current int
	filter  *DateRange // active mission date filter, nil = all
	action  dashboardAction
	footer  string
}

// NewDashboardModel builds the tab tables from the catalog and aggregates
func NewDashboardModel(data DashboardData, project string, filter *DateRange, statusMsg string) DashboardModel {
	layout := DefaultLayout()

	m := DashboardModel{
		PageState: NewPageState(layout),
		data:      data,
		project:   project,
		filter:    filter,
		footer:    buildFooterStats(data.Catalog),
	}
	if statusMsg != "" {
		m.SetStatus(statusMsg, 5*time.Second)
	}
	m.rebuildTables()
	return m
}

func (m *DashboardModel) rebuildTables() {
	m.tables = []table.Model{
		m.buildTable(CompanyColumns(), m.companyRows()),
		m.buildTable(StatusColumns(), m.statusRows()),
		m.buildTable(YearColumns(), m.yearRows()),
		m.buildTable(RocketColumns(), m.rocketRows()),
		m.buildTable(MissionColumns(), m.missionRows()),
	}
}

func (m *DashboardModel) buildTable(specs []ColumnSpec, rows []table.Row) table.Model {
	columns := CalculateColumns(specs, m.Layout.TableWidth)
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.Layout.TableHeight),
	)
	ApplyTableStyles(&t)
	t.GotoTop()
	return t
}

func (m *DashboardModel) companyRows() []table.Row {
	total := m.data.Catalog.Len()
	if total == 0 {
		return nil
	}

	rows := make([]table.Row, 0, len(m.data.Companies))
	for i, c := range m.data.Companies {
		rate := "-"
		if r, err := m.data.Catalog.SuccessRate(c.Company); err == nil {
			rate = fmt.Sprintf("%.1f", r)
		}
		share := float64(c.Count) / float64(total) * 100
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			c.Company,
			strconv.Itoa(c.Count),
			rate,
			fmt.Sprintf("%.1f", share),
		})
	}
	return rows
}

func (m *DashboardModel) statusRows() []table.Row {
	counts := m.data.Statuses
	total := m.data.Catalog.Len()

	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}

	barWidth := m.Layout.TableWidth/2 - 10
	if barWidth < 10 {
		barWidth = 10
	}

	rows := make([]table.Row, 0, len(models.AllMissionStatuses))
	for _, status := range models.AllMissionStatuses {
		rows = append(rows, table.Row{
			string(status),
			strconv.Itoa(counts[status]),
			BarWithShare(counts[status], max, total, barWidth),
		})
	}
	return rows
}

func (m *DashboardModel) yearRows() []table.Row {
	years := m.data.Years
	if len(years) == 0 {
		return nil
	}

	// The GROUP BY skips years with no launches; fill the gaps so the
	// timeline reads continuously.
	counts := make(map[int]int, len(years))
	minYear, maxYear := years[0].Year, years[0].Year
	maxCount := 0
	for _, y := range years {
		counts[y.Year] = y.Count
		if y.Year < minYear {
			minYear = y.Year
		}
		if y.Year > maxYear {
			maxYear = y.Year
		}
		if y.Count > maxCount {
			maxCount = y.Count
		}
	}

	barWidth := m.Layout.TableWidth - 24
	if barWidth < 10 {
		barWidth = 10
	}

	var rows []table.Row
	for year := minYear; year <= maxYear; year++ {
		count := counts[year]
		rows = append(rows, table.Row{
			strconv.Itoa(year),
			strconv.Itoa(count),
			Bar(count, maxCount, barWidth),
		})
	}
	return rows
}

func (m *DashboardModel) rocketRows() []table.Row {
	rows := make([]table.Row, 0, len(m.data.Rockets))
	for i, r := range m.data.Rockets {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			r.Rocket,
			strconv.Itoa(r.Count),
		})
	}
	return rows
}

func (m *DashboardModel) missionRows() []table.Row {
	missions := m.data.Catalog.Missions()

	var start, end time.Time
	if m.filter != nil {
		start, _ = time.Parse("2006-01-02", m.filter.Start)
		end, _ = time.Parse("2006-01-02", m.filter.End)
	}

	var rows []table.Row
	for _, mission := range missions {
		if m.filter != nil {
			if mission.LaunchDate.Before(start) || mission.LaunchDate.After(end) {
				continue
			}
		}
		rows = append(rows, table.Row{
			mission.LaunchDate.Format("2006-01-02"),
			mission.Company,
			mission.MissionName,
			mission.RocketName,
			string(mission.MissionStatus),
		})
	}
	return rows
}

func catalogYearSpan(catalog *dataset.Catalog) (minYear, maxYear int, ok bool) {
	missions := catalog.Missions()
	if len(missions) == 0 {
		return 0, 0, false
	}
	minYear = missions[0].LaunchDate.Year()
	maxYear = minYear
	for _, mission := range missions {
		year := mission.LaunchDate.Year()
		if year < minYear {
			minYear = year
		}
		if year > maxYear {
			maxYear = year
		}
	}
	return minYear, maxYear, true
}

// buildFooterStats summarizes the whole catalog for the footer line
func buildFooterStats(catalog *dataset.Catalog) string {
	total := catalog.Len()
	if total == 0 {
		return "Empty catalog"
	}

	parts := []string{fmt.Sprintf("%d missions", total)}

	if rocket, err := catalog.MostUsedRocket(); err == nil {
		parts = append(parts, fmt.Sprintf("most flown: %s", rocket))
	}

	if minYear, maxYear, ok := catalogYearSpan(catalog); ok {
		if avg, err := catalog.AverageMissionsPerYear(minYear, maxYear); err == nil {
			parts = append(parts, fmt.Sprintf("%.1f launches/year %d–%d", avg, minYear, maxYear))
		}
	}

	return strings.Join(parts, "  ·  ")
}

func (m DashboardModel) Init() tea.Cmd {
	return tea.WindowSize()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.ClearExpiredStatus()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.UpdateLayout(msg.Width, msg.Height) {
			cursor := m.tables[m.current].Cursor()
			m.rebuildTables()
			m.tables[m.current].SetCursor(cursor)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.action = actionQuit
			m.Quitting = true
			return m, tea.Quit

		case "tab", "right", "l":
			m.current = (m.current + 1) % len(m.tables)
			return m, nil

		case "shift+tab", "left", "h":
			m.current = (m.current + len(m.tables) - 1) % len(m.tables)
			return m, nil

		case "f":
			if m.current == len(m.tables)-1 { // Missions tab
				m.action = actionFilterMissions
				m.Quitting = true
				return m, tea.Quit
			}

		case "F":
			if m.filter != nil {
				m.action = actionClearFilter
				m.Quitting = true
				return m, tea.Quit
			}

		case "c":
			m.action = actionCompanyLookup
			m.Quitting = true
			return m, tea.Quit

		case "e":
			m.action = actionExportTab
			m.Quitting = true
			return m, tea.Quit

		case "b":
			m.action = actionBackup
			m.Quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.tables[m.current], cmd = m.tables[m.current].Update(msg)
	return m, cmd
}

func (m DashboardModel) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(ViewHeaderWithSubtitle("Launchdeck", m.footer, m.Layout.InnerWidth))
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(RenderTableWithSelection(m.tables[m.current], m.Layout))
	b.WriteString("\n")

	if m.HasStatus() {
		b.WriteString("\n")
		b.WriteString(AccentStyle.Render(m.StatusMsg))
		b.WriteString("\n")
	}

	help := "↑/↓: navigate | Tab/←/→: switch tab | c: company | e: export | b: backup | q: quit"
	if m.current == len(m.tables)-1 {
		help = "↑/↓: navigate | Tab/←/→: switch tab | f: date filter | F: clear filter | e: export | q: quit"
	}

	return BuildTwoBoxView(b.String(), help, m.Layout)
}

func (m DashboardModel) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		label := name
		if i == len(tabNames)-1 && m.filter != nil {
			label = fmt.Sprintf("%s [%s → %s]", name, m.filter.Start, m.filter.End)
		}
		if i == m.current {
			tabs = append(tabs, TabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, TabInactiveStyle.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

// currentTabExport returns the current tab name, header and rows as strings
// for markdown export.
func (m DashboardModel) currentTabExport() (string, []string, [][]string) {
	var specs []ColumnSpec
	switch m.current {
	case 0:
		specs = CompanyColumns()
	case 1:
		specs = StatusColumns()
	case 2:
		specs = YearColumns()
	case 3:
		specs = RocketColumns()
	default:
		specs = MissionColumns()
	}

	header := make([]string, len(specs))
	for i, s := range specs {
		header[i] = s.Title
	}

	var rows [][]string
	for _, row := range m.tables[m.current].Rows() {
		rows = append(rows, []string(row))
	}

	return tabNames[m.current], header, rows
}

// RunDashboard runs the dashboard loop: show the tabbed view, handle the
// action it exited with (filter form, company lookup, export), and relaunch
// until the user quits.
func RunDashboard(data DashboardData, projectPath string) error {
	catalog := data.Catalog
	var filter *DateRange
	statusMsg := ""

	for {
		model := NewDashboardModel(data, projectPath, filter, statusMsg)
		statusMsg = ""

		p := tea.NewProgram(model, tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			return fmt.Errorf("dashboard error: %w", err)
		}
		final := finalModel.(DashboardModel)

		switch final.action {
		case actionQuit:
			return nil

		case actionFilterMissions:
			r, err := PromptForDateRange()
			if err != nil {
				continue // cancelled
			}
			names, err := catalog.MissionsByDateRange(r.Start, r.End)
			if err != nil {
				statusMsg = fmt.Sprintf("Invalid range: %v", err)
				continue
			}
			filter = &r
			statusMsg = fmt.Sprintf("%d missions between %s and %s", len(names), r.Start, r.End)

		case actionClearFilter:
			filter = nil
			statusMsg = "Filter cleared"

		case actionCompanyLookup:
			company, err := PromptForCompany()
			if err != nil {
				continue
			}
			count := catalog.MissionCountByCompany(company)
			rate, err := catalog.SuccessRate(company)
			switch {
			case errors.Is(err, dataset.ErrNoMissions):
				statusMsg = fmt.Sprintf("%s: no missions in catalog", company)
			case err != nil:
				statusMsg = fmt.Sprintf("Lookup failed: %v", err)
			default:
				statusMsg = fmt.Sprintf("%s: %d missions, %.5f%% success", company, count, rate)
			}

		case actionExportTab:
			tab, header, rows := final.currentTabExport()
			filename, err := ExportTabToMarkdown(projectPath, tab, header, rows)
			if err != nil {
				statusMsg = fmt.Sprintf("Export failed: %v", err)
			} else {
				statusMsg = fmt.Sprintf("Exported to %s", filename)
			}

		case actionBackup:
			filename, err := ExportDatabaseBackup(projectPath)
			if err != nil {
				statusMsg = fmt.Sprintf("Backup failed: %v", err)
			} else {
				statusMsg = fmt.Sprintf("Backup written to %s", filename)
			}
		}
	}
}
