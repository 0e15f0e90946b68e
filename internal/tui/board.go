package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"studyquest/internal/planner"
	"studyquest/internal/progress"
)

func RunBoard(ctx context.Context, store *progress.Store, plan *planner.Service, out io.Writer) error {
	m := newBoardModel(ctx, store, plan)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
