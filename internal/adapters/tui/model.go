// Package tui provides the interactive timer interface using the Bubbletea
// framework. The model is a pure consumer of the store: it renders store
// state and dispatches mutation operations in response to input, with a
// once-per-second tick message driving the countdown.
package tui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pomoquest/internal/config"
	"pomoquest/internal/domain"
	"pomoquest/internal/store"
	"pomoquest/internal/timeutil"
)

// view selects which screen the model renders.
type view int

const (
	viewTimer view = iota
	viewPicker
	viewDashboard
)

// tickMsg is sent once per second while the program runs.
type tickMsg time.Time

// Model is the root TUI state.
type Model struct {
	store  *store.Store
	styles styles

	view      view
	picker    pickerModel
	dashboard dashboardModel
	bar       progress.Model

	width  int
	height int

	// Completion toast, cleared a few ticks after a session completes.
	toast      string
	toastTicks int

	lastSessionCount     int
	lastAchievementCount int
}

// NewModel builds the root model for the given store and UI config.
func NewModel(st *store.Store, ui config.UIConfig) Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false

	return Model{
		store:                st,
		styles:               newStyles(ui),
		picker:               newPickerModel(st),
		dashboard:            newDashboardModel(st),
		bar:                  bar,
		lastSessionCount:     len(st.Sessions()),
		lastAchievementCount: len(st.Stats().Achievements),
	}
}

// Run starts the TUI program and blocks until the user quits.
func Run(st *store.Store, ui config.UIConfig) error {
	program := tea.NewProgram(NewModel(st, ui), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = min(msg.Width-10, 50)
		m.dashboard.setSize(msg.Width, msg.Height)
		return m, nil

	case tickMsg:
		m.store.Tick()
		m.noteCompletions()
		if m.view == viewDashboard {
			m.dashboard.refresh()
		}
		return m, tick()

	case tea.KeyMsg:
		switch m.view {
		case viewPicker:
			return m.updatePicker(msg)
		case viewDashboard:
			return m.updateDashboard(msg)
		default:
			return m.updateTimer(msg)
		}
	}
	return m, nil
}

func (m Model) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Toggle):
		if m.store.Timer().Status == domain.TimerStatusRunning {
			m.store.Pause()
		} else {
			m.store.Start()
		}
	case key.Matches(msg, keys.Reset):
		m.store.Reset()
	case key.Matches(msg, keys.Skip):
		m.store.Skip()
		m.noteCompletions()
	case key.Matches(msg, keys.Tasks):
		m.view = viewPicker
		m.picker.reset()
		return m, m.picker.focus()
	case key.Matches(msg, keys.Dashboard):
		m.view = viewDashboard
		m.dashboard.refresh()
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = viewTimer
		return m, nil
	case "enter":
		m.picker.selectCurrent()
		m.view = viewTimer
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.update(msg)
	return m, cmd
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "d", "q":
		m.view = viewTimer
	}
	return m, nil
}

// noteCompletions watches for sessions and achievements appended by the
// last mutation and raises the toast line shown under the clock.
func (m *Model) noteCompletions() {
	sessions := m.store.Sessions()
	if len(sessions) > m.lastSessionCount {
		last := sessions[len(sessions)-1]
		if last.IsFocus() {
			m.toast = domain.MotivationalQuotes[rand.Intn(len(domain.MotivationalQuotes))]
		} else {
			m.toast = "Break finished. Back to it."
		}
		m.toastTicks = 5
	} else if m.toastTicks > 0 {
		m.toastTicks--
		if m.toastTicks == 0 {
			m.toast = ""
		}
	}
	m.lastSessionCount = len(sessions)

	stats := m.store.Stats()
	if n := len(stats.Achievements); n > m.lastAchievementCount {
		a := stats.Achievements[n-1]
		m.toast = fmt.Sprintf("%s Achievement unlocked: %s", a.Icon, a.Title)
		m.toastTicks = 5
	}
	m.lastAchievementCount = len(stats.Achievements)
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.view {
	case viewPicker:
		return m.picker.view(m.styles)
	case viewDashboard:
		return m.dashboard.view(m.styles)
	}
	return m.timerView()
}

func (m Model) timerView() string {
	timer := m.store.Timer()
	settings := m.store.Settings()
	phase := m.styles.phaseStyle(timer.Status, timer.SessionType)

	header := m.styles.title.Render("🍅 PomoQuest") + "  " +
		phase.Render(domain.SessionTypeLabel(timer.SessionType))
	if timer.Status == domain.TimerStatusPaused {
		header += m.styles.muted.Render("  ⏸ paused")
	}

	clock := m.styles.clock.
		BorderForeground(phase.GetForeground()).
		Render(phase.Render(timeutil.FormatTime(timer.TimeRemaining)))

	total := settings.DurationFor(timer.SessionType)
	done := 0.0
	if total > 0 {
		done = 1 - float64(timer.TimeRemaining)/float64(total)
	}
	bar := m.bar.ViewAs(done)

	var lines []string
	lines = append(lines, header, "", clock, "", bar, "")

	if task, ok := m.store.CurrentTask(); ok {
		lines = append(lines, m.styles.muted.Render(
			fmt.Sprintf("📋 %s (%d/%d 🍅)", task.Title, task.PomodorosCompleted, task.PomodorosEstimated)))
	} else {
		lines = append(lines, m.styles.muted.Render("📋 no task linked (press t)"))
	}

	stats := m.store.Stats()
	lines = append(lines, m.styles.muted.Render(fmt.Sprintf(
		"Lv %d · %d XP · streak %d · until long break: %d",
		stats.Level, stats.XP, stats.CurrentStreak, timer.SessionsUntilLongBreak)))

	if m.toast != "" {
		lines = append(lines, "", m.styles.toast.Render(m.toast))
	}

	lines = append(lines, "",
		m.styles.muted.Render("space start/pause · r reset · k skip · t task · d dashboard · q quit"))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
