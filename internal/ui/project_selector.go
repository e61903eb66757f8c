package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/astrakit/launchdeck/internal/db"

	tea "github.com/charmbracelet/bubbletea"
)

// ProjectResult represents the user's selection from the project selector
type ProjectResult struct {
	Action      string // "open", "create", "exit"
	ProjectPath string // path to the selected/created project database
}

// ProjectSelectorModel handles project selection UI
type ProjectSelectorModel struct {
	projects    []string // list of .db files
	cursor      int
	createMode  bool   // true when creating new project
	createInput string // input for new project name
	result      *ProjectResult
	quitting    bool
	width       int
	height      int
}

// NewProjectSelectorModel creates a new project selector
func NewProjectSelectorModel(projects []string) ProjectSelectorModel {
	return ProjectSelectorModel{
		projects: projects,
		cursor:   0,
		width:    DefaultWidth,
		height:   DefaultHeight,
	}
}

func (m ProjectSelectorModel) Init() tea.Cmd {
	return tea.WindowSize()
}

func (m ProjectSelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.createMode {
			return m.handleCreateMode(msg)
		}
		return m.handleSelectMode(msg)
	}
	return m, nil
}

func (m ProjectSelectorModel) handleSelectMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	totalOptions := len(m.projects) + 2 // projects + "Create New" + "Exit"

	switch msg.String() {
	case "esc", "q", "ctrl+c":
		m.result = &ProjectResult{Action: "exit"}
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < totalOptions-1 {
			m.cursor++
		}

	case "enter":
		if m.cursor < len(m.projects) {
			m.result = &ProjectResult{
				Action:      "open",
				ProjectPath: m.projects[m.cursor],
			}
			m.quitting = true
			return m, tea.Quit
		} else if m.cursor == len(m.projects) {
			m.createMode = true
			m.createInput = ""
		} else {
			m.result = &ProjectResult{Action: "exit"}
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ProjectSelectorModel) handleCreateMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.createMode = false
		m.createInput = ""

	case "enter":
		if m.createInput != "" {
			name := sanitizeProjectName(m.createInput)
			if name != "" {
				m.result = &ProjectResult{
					Action:      "create",
					ProjectPath: name + ".db",
				}
				m.quitting = true
				return m, tea.Quit
			}
		}

	case "backspace":
		if len(m.createInput) > 0 {
			m.createInput = m.createInput[:len(m.createInput)-1]
		}

	default:
		if len(msg.String()) == 1 {
			char := msg.String()[0]
			if isValidProjectChar(char) {
				m.createInput += msg.String()
			}
		}
	}
	return m, nil
}

func (m ProjectSelectorModel) View() string {
	if m.quitting {
		return ""
	}

	layout := NewLayout(m.width, m.height)

	var b strings.Builder
	b.WriteString(ViewHeader("Select Catalog Project", layout.InnerWidth))

	if m.createMode {
		b.WriteString("Enter project name:\n\n")
		b.WriteString(AccentStyle.Render(m.createInput + "_"))
		b.WriteString("\n\n")
		b.WriteString(HintStyle.Render("Press Enter to create, Esc to cancel"))
		return BuildTwoBoxView(b.String(), "Enter: create | Esc: cancel", layout)
	}

	if len(m.projects) == 0 {
		b.WriteString(HintStyle.Render("No existing projects found"))
		b.WriteString("\n\n")
	} else {
		for i, proj := range m.projects {
			// Display project name without .db extension
			displayName := strings.TrimSuffix(proj, filepath.Ext(proj))
			b.WriteString(RenderListItem(displayName, i == m.cursor, layout.InnerWidth))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(RenderListItem("Create New Project", m.cursor == len(m.projects), layout.InnerWidth))
	b.WriteString("\n")
	b.WriteString(RenderListItem("Exit", m.cursor == len(m.projects)+1, layout.InnerWidth))
	b.WriteString("\n")

	return BuildTwoBoxView(b.String(), "↑/↓: navigate | Enter: select | q/Esc: exit", layout)
}

// RunProjectSelector lists the .db files in the working directory and lets
// the user open one, create a new one, or exit.
func RunProjectSelector() (*ProjectResult, error) {
	projects, err := db.ListProjectFiles(".")
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	p := tea.NewProgram(NewProjectSelectorModel(projects), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("project selector error: %w", err)
	}

	final := finalModel.(ProjectSelectorModel)
	if final.result == nil {
		return &ProjectResult{Action: "exit"}, nil
	}
	return final.result, nil
}

// sanitizeProjectName strips characters that do not belong in a filename
func sanitizeProjectName(name string) string {
	name = strings.TrimSpace(name)
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		if isValidProjectChar(name[i]) {
			b.WriteByte(name[i])
		}
	}
	return b.String()
}

func isValidProjectChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c == '.' || c == ' '
}
