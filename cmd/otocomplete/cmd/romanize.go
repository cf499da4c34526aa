package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var romanizeCmd = &cobra.Command{
	Use:   "romanize <kana>...",
	Short: "Print the default romanization of kana",
	Long: `Print the default romanization of each argument.

Example:
  otocomplete romanize りゅうじょう "ぷりんつ・おいげん"
  otocomplete romanize --dict ipa 今日は天気`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRomanize,
}

func init() {
	rootCmd.AddCommand(romanizeCmd)
}

func runRomanize(cmd *cobra.Command, args []string) error {
	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}
	for _, arg := range args {
		text, err := analyzer.Analyze(arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", arg, text)
	}
	return nil
}
