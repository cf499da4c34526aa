package cmd

import (
	"fmt"

	"github.com/SeaOfBirds/roma-otocomplete/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Autocomplete candidates as you type",
	Long: `Launch an interactive terminal UI that suggests candidates on every
keystroke. The chosen candidate is printed on exit.

Controls:
  ↑/↓     Select
  Enter   Choose
  Esc     Quit`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	src, err := openSource()
	if err != nil {
		return err
	}
	defer src.Close()

	p := tea.NewProgram(
		tui.New(src.searcher()),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	if c := final.(tui.Model).Chosen(); c != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", c.ID, c.Label)
	}
	return nil
}
