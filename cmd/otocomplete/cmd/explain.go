package cmd

import (
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain <kana>",
	Short: "Dump the moras and segments of kana",
	Long: `Dump how kana is split into moras and segments, with every spelling
each mora accepts. The first spelling is the default one.

Example:
  otocomplete explain がっこう`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

type moraExplanation struct {
	Styles   []string
	Syllable bool
}

type segmentExplanation struct {
	Offset int
	Suffix string // このセグメントから末尾までのローマ字
	Moras  []moraExplanation
}

type explanation struct {
	Input    string
	Romaji   string
	Segments []segmentExplanation
}

func runExplain(cmd *cobra.Command, args []string) error {
	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}
	text, err := analyzer.Analyze(args[0])
	if err != nil {
		return err
	}

	e := explanation{Input: args[0], Romaji: text.String()}
	offset := 0
	for s := text; s != nil; s = s.Next() {
		seg := segmentExplanation{Offset: offset, Suffix: s.String()}
		for _, m := range s.Moras()[:s.SegmentLen()] {
			seg.Moras = append(seg.Moras, moraExplanation{Styles: m.Styles(), Syllable: m.IsSyllable()})
		}
		e.Segments = append(e.Segments, seg)
		offset += s.SegmentLen()
	}

	_, err = pp.Fprintln(cmd.OutOrStdout(), e)
	return err
}
