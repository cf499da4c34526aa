package cmd

import (
	"fmt"

	otocomplete "github.com/SeaOfBirds/roma-otocomplete"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every candidate with its romanization",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	src, err := openSource()
	if err != nil {
		return err
	}
	defer src.Close()

	all, err := otocomplete.NewMatchAllSearcher(src.storage).Search("")
	if err != nil {
		return err
	}
	for _, s := range all {
		text, err := src.analyzer.Analyze(s.Item.Kana)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", s.Item.ID, s.Item.Label, s.Item.Kana, text)
	}
	return nil
}
