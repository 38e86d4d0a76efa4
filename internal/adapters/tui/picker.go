package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"pomoquest/internal/domain"
	"pomoquest/internal/store"
)

// pickerModel is the fuzzy task picker overlay. Typing filters open tasks
// by title; enter links the highlighted task to the timer, esc cancels.
type pickerModel struct {
	store   *store.Store
	input   textinput.Model
	tasks   []domain.Task
	matches []domain.Task
	cursor  int
}

func newPickerModel(st *store.Store) pickerModel {
	input := textinput.New()
	input.Placeholder = "type to filter tasks..."
	input.CharLimit = 80
	return pickerModel{store: st, input: input}
}

// reset reloads open tasks and clears the filter.
func (p *pickerModel) reset() {
	p.tasks = nil
	for _, t := range p.store.Tasks() {
		if !t.Completed {
			p.tasks = append(p.tasks, t)
		}
	}
	p.matches = p.tasks
	p.cursor = 0
	p.input.SetValue("")
}

func (p *pickerModel) focus() tea.Cmd {
	return p.input.Focus()
}

func (p pickerModel) update(msg tea.KeyMsg) (pickerModel, tea.Cmd) {
	switch msg.String() {
	case "up":
		if p.cursor > 0 {
			p.cursor--
		}
		return p, nil
	case "down":
		if p.cursor < len(p.matches)-1 {
			p.cursor++
		}
		return p, nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.filter()
	return p, cmd
}

// filter narrows the task list with a fuzzy match on titles.
func (p *pickerModel) filter() {
	query := p.input.Value()
	if query == "" {
		p.matches = p.tasks
		p.cursor = 0
		return
	}

	titles := make([]string, len(p.tasks))
	for i, t := range p.tasks {
		titles[i] = t.Title
	}

	results := fuzzy.Find(query, titles)
	p.matches = make([]domain.Task, 0, len(results))
	for _, r := range results {
		p.matches = append(p.matches, p.tasks[r.Index])
	}
	p.cursor = 0
}

// selectCurrent links the highlighted task; with no matches it unlinks.
func (p *pickerModel) selectCurrent() {
	if len(p.matches) == 0 || p.cursor >= len(p.matches) {
		_ = p.store.SetCurrentTask(nil)
		return
	}
	id := p.matches[p.cursor].ID
	_ = p.store.SetCurrentTask(&id)
}

func (p pickerModel) view(s styles) string {
	var sb strings.Builder
	sb.WriteString(s.title.Render("Pick a task") + "\n\n")
	sb.WriteString(p.input.View() + "\n\n")

	if len(p.matches) == 0 {
		sb.WriteString(s.muted.Render("  no open tasks match") + "\n")
	}
	for i, t := range p.matches {
		marker := "  "
		if i == p.cursor {
			marker = s.badge.Render("> ")
		}
		line := fmt.Sprintf("%s%s  %s", marker, t.Title,
			s.muted.Render(fmt.Sprintf("[%s · %s · %d/%d 🍅]", t.Category, t.Priority, t.PomodorosCompleted, t.PomodorosEstimated)))
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\n" + s.muted.Render("enter link · esc cancel · ↑/↓ move"))
	return sb.String()
}
