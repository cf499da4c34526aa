package cmd

import (
	"errors"
	"fmt"

	otocomplete "github.com/SeaOfBirds/roma-otocomplete"
	"github.com/spf13/cobra"
)

var errNoMatch = errors.New("no match")

var matchCmd = &cobra.Command{
	Use:   "match <query> <kana>",
	Short: "Match a romaji query against kana",
	Long: `Match a romaji query against kana and print the romanization in the
styles the query was typed in. Exits non-zero when there is no match.

Example:
  otocomplete match tue "ぐらーふ・つぇっぺりん"`,
	Args: cobra.ExactArgs(2),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}
	text, err := analyzer.Analyze(args[1])
	if err != nil {
		return err
	}
	v, err := otocomplete.Match(foldQuery(args[0]), text)
	if err != nil {
		return err
	}
	if v == nil {
		return errNoMatch
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}
