package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/providers"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/tui"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Start the interactive study interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStudy()
	},
}

func runStudy() error {
	provider, err := providers.New(context.Background(), cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(tui.NewModel(cfg, log, provider), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run interface: %w", err)
	}
	return nil
}
