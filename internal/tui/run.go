package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/nuban/internal/registry"
)

// RunLookup runs the interactive lookup until the user quits or ctx ends.
func RunLookup(ctx context.Context, reg registry.Registry) error {
	p := tea.NewProgram(NewLookupModel(reg), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("lookup screen failed: %w", err)
	}
	return nil
}
