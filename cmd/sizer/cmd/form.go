package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rustyeddy/sizer/config"
	"github.com/rustyeddy/sizer/tui"
	"github.com/spf13/cobra"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the interactive sizing form",
	Long: `Launch the terminal form. Edit fields, pick an instrument, press
enter to calculate. Any edit after a result marks it stale until the
next calculation.

Example:
  sizer form --config sizer.yaml`,
	RunE: runForm,
}

var formConfigPath string

func init() {
	rootCmd.AddCommand(formCmd)
	formCmd.Flags().StringVarP(&formConfigPath, "config", "c", "", "config file with defaults and instrument overrides")
}

func runForm(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{}
	if formConfigPath != "" {
		var err error
		cfg, err = config.LoadFromFile(formConfigPath)
		if err != nil {
			return err
		}
	}

	m := tui.New(cfg.TickTable(), cfg.Snapshot())
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run form: %w", err)
	}
	return nil
}
