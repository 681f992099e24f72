package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"looseeq/cmd/looseeq/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the full-screen terminal interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := ui.New(ui.Options{
			Theme:   ui.ThemeByName(cfg.UI.Theme),
			Verify:  cfg.Display.Verify,
			Version: version,
		})
		_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
		return err
	},
}
