package ui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"taskzord/internal/config"
	"taskzord/internal/service"
)

// Run shows the screen until the user quits or ctx is cancelled.
func Run(ctx context.Context, svc service.Service, settings config.Settings, dark bool, in io.Reader, out io.Writer) error {
	m := New(ctx, svc, settings, dark)
	defer m.Close()

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	}
	if settings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
