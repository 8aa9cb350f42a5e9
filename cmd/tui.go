package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"worklog/internal/report"
	"worklog/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui <logfile>",
	Short: "Browse the work log interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := loadLog(args[0])
		if err != nil {
			return err
		}
		asOf, err := referenceDay()
		if err != nil {
			return err
		}

		m := tui.NewModel(log, report.Build(log), asOf)
		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running program: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
