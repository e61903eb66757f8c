package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SplashModel is the TUI model for the splash screen
type SplashModel struct {
	width  int
	height int
	done   bool
}

type splashTimeoutMsg struct{}

func waitForTimeout() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return splashTimeoutMsg{}
	})
}

func (m SplashModel) Init() tea.Cmd {
	return waitForTimeout()
}

func (m SplashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		m.done = true
		return m, tea.Quit
	case splashTimeoutMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SplashModel) View() string {
	if m.done {
		return ""
	}

	layout := NewLayout(m.width, m.height)

	height := layout.ViewportHeight - 4
	if height < 10 {
		height = 10
	}

	title := AccentStyle.Render("LAUNCHDECK")
	subtitle := DimStyle.Render("space launch catalog, 1957–2022")

	var b strings.Builder
	for i := 0; i < height; i++ {
		switch i {
		case height / 2:
			b.WriteString(CenterText(title, layout.InnerWidth))
		case height/2 + 1:
			b.WriteString(CenterText(subtitle, layout.InnerWidth))
		}
		b.WriteString("\n")
	}

	return BorderStyle.
		Width(layout.InnerWidth).
		Height(height).
		Render(b.String())
}

// ShowSplash displays the splash screen until a key press or timeout
func ShowSplash() {
	model := SplashModel{
		width:  DefaultWidth,
		height: DefaultHeight,
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	p.Run()

	// Clear screen before continuing
	fmt.Print("\033[2J\033[H")
}
