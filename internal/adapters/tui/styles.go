package tui

import (
	"github.com/charmbracelet/lipgloss"

	"pomoquest/internal/config"
	"pomoquest/internal/domain"
)

// styles bundles the lipgloss styles derived from the UI config.
type styles struct {
	focus     lipgloss.Style
	breakTime lipgloss.Style
	paused    lipgloss.Style
	title     lipgloss.Style
	muted     lipgloss.Style
	clock     lipgloss.Style
	toast     lipgloss.Style
	badge     lipgloss.Style
}

func newStyles(ui config.UIConfig) styles {
	focusColor := lipgloss.Color(ui.ColorFocus)
	breakColor := lipgloss.Color(ui.ColorBreak)
	textColor := lipgloss.Color(ui.ColorText)

	return styles{
		focus:     lipgloss.NewStyle().Foreground(focusColor).Bold(true),
		breakTime: lipgloss.NewStyle().Foreground(breakColor).Bold(true),
		paused:    lipgloss.NewStyle().Foreground(textColor).Bold(true),
		title:     lipgloss.NewStyle().Foreground(textColor).Bold(true),
		muted:     lipgloss.NewStyle().Foreground(textColor),
		clock: lipgloss.NewStyle().
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()),
		toast: lipgloss.NewStyle().Foreground(breakColor).Italic(true),
		badge: lipgloss.NewStyle().Foreground(focusColor),
	}
}

// phaseStyle picks the accent style for the current session type and status.
func (s styles) phaseStyle(status domain.TimerStatus, sessionType domain.SessionType) lipgloss.Style {
	if status == domain.TimerStatusPaused {
		return s.paused
	}
	if sessionType == domain.SessionTypeFocus {
		return s.focus
	}
	return s.breakTime
}
