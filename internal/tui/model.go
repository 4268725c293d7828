// Package tui provides the interactive terminal client: an input line for new
// tasks above the task list, with per-task complete, undo and delete actions.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/todolist"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// resultMsg carries a finished request back onto the event loop.
type resultMsg struct {
	result todolist.Result
}

// Model is the bubbletea model wrapping a todolist.Store.
type Model struct {
	ctx   context.Context
	store *todolist.Store

	input  textinput.Model
	help   help.Model
	keys   keyMap
	focus  focusArea
	cursor int
	width  int
}

// New creates the model. Requests run with ctx.
func New(ctx context.Context, store *todolist.Store) Model {
	ti := textinput.New()
	ti.Placeholder = "Create Task"
	ti.Prompt = "› "
	ti.SetValue(store.Input())
	ti.Focus()

	keys := defaultKeyMap()
	keys.inputFocused = true

	return Model{
		ctx:   ctx,
		store: store,
		input: ti,
		help:  help.New(),
		keys:  keys,
		focus: focusInput,
	}
}

// Init loads the list on first display.
func (m Model) Init() tea.Cmd {
	return m.request(m.store.Load())
}

// request turns a store request into a command. Each command runs to
// completion independently; nothing cancels an earlier one.
func (m Model) request(req todolist.Request) tea.Cmd {
	if req == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return resultMsg{result: req(ctx)}
	}
}

// Update handles events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-lipgloss.Width(m.input.Prompt)-4, 10)
		return m, nil

	case resultMsg:
		follow := m.store.Handle(msg.result)
		if m.input.Value() != m.store.Input() {
			m.input.SetValue(m.store.Input())
		}
		m.clampCursor()
		return m, m.request(follow)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m, m.request(m.store.Submit())
	case key.Matches(msg, m.keys.ToList):
		m.setFocus(focusList)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.store.SetInput(m.input.Value())
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ToInput):
		cmd := m.setFocus(focusInput)
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.store.Tasks())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Reload):
		return m, m.request(m.store.Load())
	case key.Matches(msg, m.keys.Complete):
		if task, ok := m.selected(); ok {
			return m, m.request(m.store.Complete(task.ID))
		}
	case key.Matches(msg, m.keys.Undo):
		if task, ok := m.selected(); ok {
			return m, m.request(m.store.Undo(task.ID))
		}
	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.selected(); ok {
			return m, m.request(m.store.Delete(task.ID))
		}
	}
	return m, nil
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.keys.inputFocused = f == focusInput
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m Model) selected() (service.Task, bool) {
	tasks := m.store.Tasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return service.Task{}, false
	}
	return tasks[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.store.Tasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("To do List"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	tasks := m.store.Tasks()
	if len(tasks) == 0 {
		b.WriteString(emptyStyle.Render("no tasks"))
		b.WriteString("\n")
	}
	for i, task := range tasks {
		b.WriteString(renderTask(task, m.width, m.focus == focusList && i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return appStyle.Render(b.String())
}

// renderTask renders one task line. width 0 disables truncation.
func renderTask(task service.Task, width int, selected bool) string {
	prefix := "  "
	if selected {
		prefix = cursorStyle.Render("> ")
	}

	treatment := output.TreatmentOf(task)
	glyph, style := treatmentGlyph(treatment), treatmentStyle(treatment)

	text := output.NormalizeText(task.Text)
	if avail := width - appStyle.GetHorizontalPadding() - 4; width > 0 && avail > 0 {
		text = runewidth.Truncate(text, avail, "…")
	}
	return prefix + style.Render(glyph+" "+text)
}

func treatmentGlyph(t output.Treatment) string {
	if t == output.Complete {
		return "✓"
	}
	return "○"
}

func treatmentStyle(t output.Treatment) lipgloss.Style {
	if t == output.Complete {
		return completeStyle
	}
	return incompleteStyle
}
