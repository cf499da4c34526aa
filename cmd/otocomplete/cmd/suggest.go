package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var suggestLimit int

var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "List the candidates a romaji query is a prefix of",
	Long: `List the candidates a romaji query is a prefix of, in ID order.

Example:
  otocomplete suggest --candidates ships.yaml syo`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 0, "maximum number of suggestions (0 for all)")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	src, err := openSource()
	if err != nil {
		return err
	}
	defer src.Close()

	suggestions, err := src.searcher().Search(foldQuery(args[0]))
	if err != nil {
		return err
	}
	for i, s := range suggestions {
		if suggestLimit > 0 && i >= suggestLimit {
			break
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", s.Item.ID, s.Item.Label, s.View)
	}
	return nil
}
