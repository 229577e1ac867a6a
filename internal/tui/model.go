// Package tui renders the to-do list in the terminal.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"getthingsdone/internal/models"
	"getthingsdone/internal/todo"
)

const heading = "Get Things Done!"

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
)

// changedMsg tells the model the list changed outside Update.
type changedMsg struct{}

// Model is the bubbletea model projecting a todo.List.
type Model struct {
	ctx    context.Context
	list   *todo.List
	snap   todo.Snapshot
	cursor int
	mode   mode
	editID string
	input  textinput.Model
	keys   keyMap
	help   help.Model
	status string
}

// New creates a model over list. ctx is passed to persisting operations.
func New(ctx context.Context, list *todo.List) Model {
	input := textinput.New()
	input.Placeholder = "What is the task today?"
	input.CharLimit = 256
	input.Width = 40

	return Model{
		ctx:   ctx,
		list:  list,
		snap:  list.Snapshot(),
		input: input,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case changedMsg:
		m.refresh()
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.snap.Visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.Reset()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Edit):
		task, ok := m.selected()
		if !ok {
			break
		}
		if !task.IsEditing {
			m.list.EnterEditMode(task.ID)
		}
		m.mode = modeEdit
		m.editID = task.ID
		m.input.SetValue(task.Task)
		m.input.CursorEnd()
		m.refresh()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.selected(); ok {
			m.setErr(m.list.ToggleComplete(m.ctx, task.ID))
		}
	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.selected(); ok {
			m.setErr(m.list.Remove(m.ctx, task.ID))
		}
	case key.Matches(msg, m.keys.Sort):
		m.setErr(m.list.Sort(m.ctx))
	case key.Matches(msg, m.keys.Filter):
		m.list.SetFilter(m.snap.Filter.Next())
	case key.Matches(msg, m.keys.All):
		m.list.SetFilter(models.FilterAll)
	case key.Matches(msg, m.keys.Completed):
		m.list.SetFilter(models.FilterCompleted)
	case key.Matches(msg, m.keys.Incomplete):
		m.list.SetFilter(models.FilterIncomplete)
	}

	m.refresh()
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if m.mode == modeEdit {
			m.list.EnterEditMode(m.editID)
		}
		m.leaveInput()
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		text := m.input.Value()
		if err := models.ValidateText(text); err != nil {
			m.status = err.Error()
			return m, nil
		}
		var err error
		if m.mode == modeAdd {
			_, err = m.list.Add(m.ctx, text)
		} else {
			err = m.list.CommitEdit(m.ctx, m.editID, text)
		}
		if err != nil {
			m.setErr(err)
			return m, nil
		}
		m.leaveInput()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) leaveInput() {
	m.mode = modeBrowse
	m.editID = ""
	m.status = ""
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) setErr(err error) {
	if err != nil {
		m.status = err.Error()
	}
}

// refresh re-projects the list and keeps the cursor in range.
func (m *Model) refresh() {
	m.snap = m.list.Snapshot()
	if m.cursor >= len(m.snap.Visible) {
		m.cursor = len(m.snap.Visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() (models.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Visible) {
		return models.Task{}, false
	}
	return m.snap.Visible[m.cursor], true
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n")

	if m.mode == modeAdd {
		b.WriteString(inputStyle.Render(m.input.View()))
		b.WriteString("\n")
	}

	b.WriteString(m.controlsView())
	b.WriteString("\n\n")

	if len(m.snap.Visible) == 0 {
		b.WriteString(emptyStyle.Render("Nothing here. Press 'a' to add a task."))
		b.WriteString("\n")
	}
	for i, task := range m.snap.Visible {
		b.WriteString(m.rowView(i, task))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) controlsView() string {
	parts := []string{controlStyle.Render(m.snap.Direction.Label())}
	for _, f := range models.FilterModes {
		style := controlStyle
		if f == m.snap.Filter {
			style = activeStyle
		}
		parts = append(parts, style.Render(f.Label()))
	}
	return strings.Join(parts, "|")
}

func (m Model) rowView(i int, task models.Task) string {
	if m.mode == modeEdit && task.ID == m.editID {
		return rowStyle.Render("✎ " + m.input.View())
	}

	marker := "○ "
	if task.Completed {
		marker = "● "
	}
	if task.IsEditing {
		marker = "✎ "
	}

	text := task.Task
	if task.Completed {
		text = completedStyle.Render(text)
	}

	line := marker + text
	if i == m.cursor {
		return selectedStyle.Render("> ") + line
	}
	return rowStyle.Render(line)
}
