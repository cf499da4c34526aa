package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	otocomplete "github.com/SeaOfBirds/roma-otocomplete"
	"github.com/SeaOfBirds/roma-otocomplete/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var addCmd = &cobra.Command{
	Use:   "add <label> <kana>",
	Short: "Add a candidate",
	Long: `Add a candidate to the candidates file, or to the database when no file
is given. Kana that cannot be romanized is rejected.

Example:
  otocomplete add 龍驤 りゅうじょう
  otocomplete add --candidates ships.yaml "Prinz Eugen" "ぷりんつ・おいげん"`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}
	c := otocomplete.NewCandidate(args[0], args[1])

	if path := viper.GetString("candidates"); path != "" {
		if _, err := analyzer.Analyze(c.Kana); err != nil {
			return fmt.Errorf("analyzing %q: %w", c.Kana, err)
		}
		candidates, err := config.LoadCandidates(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		candidates = append(candidates, c)
		if err := config.SaveCandidates(path, candidates); err != nil {
			return err
		}
		log.Printf("wrote %d candidates to %s", len(candidates), path)
		fmt.Fprintln(cmd.OutOrStdout(), len(candidates))
		return nil
	}

	storage, err := openStorage()
	if err != nil {
		return err
	}
	defer storage.DB.Close()

	indexer := otocomplete.NewIndexer(storage, analyzer, make(otocomplete.InvertedIndex))
	id, err := indexer.AddCandidate(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}
