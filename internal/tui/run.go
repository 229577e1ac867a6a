package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"getthingsdone/internal/todo"
)

// Run starts the terminal UI and blocks until the user quits or ctx is done.
func Run(ctx context.Context, list *todo.List, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(ctx, list), opts...)

	// Notifications can fire inside Update; Send would block the event loop there.
	cancel := list.Subscribe(func(todo.Snapshot) {
		go p.Send(changedMsg{})
	})
	defer cancel()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
