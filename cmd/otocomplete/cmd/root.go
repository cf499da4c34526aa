// Package cmd contains the CLI commands of otocomplete.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "otocomplete",
	Short: "Romaji prefix matching against Japanese kana",
	Long: `otocomplete romanizes kana and tells whether a romaji query, typed in
any common romanization style, is a prefix of it.

  shi/si, chi/ti, tsu/tu, fu/hu   all accepted
  ー                               "-" or the vowel
  っ                               doubled consonant, xtu or ltu
  space, ・, ＝                    start a new segment a query may begin at

Candidates come from a YAML file (--candidates) or a database (db.*).`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFlags(0)
		log.SetPrefix("otocomplete: ")
		if !viper.GetBool("verbose") {
			log.SetOutput(io.Discard)
		}
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/otocomplete/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("candidates", "", "candidates YAML file; the database is used when empty")
	rootCmd.PersistentFlags().String("dict", "none", "dictionary for reading kanji: ipa, neologd or none")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("candidates", rootCmd.PersistentFlags().Lookup("candidates"))
	viper.BindPFlag("dict", rootCmd.PersistentFlags().Lookup("dict"))

	viper.SetDefault("db.driver", "sqlite")
	viper.SetDefault("db.dsn", "otocomplete.db")
	viper.SetDefault("db.user", "root")
	viper.SetDefault("db.password", "")
	viper.SetDefault("db.addr", "127.0.0.1")
	viper.SetDefault("db.port", "3306")
	viper.SetDefault("db.name", "otocomplete")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "otocomplete"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// OTOCOMPLETE_DB_DSN -> db.dsn
	viper.SetEnvPrefix("OTOCOMPLETE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "Error reading config:", err)
			os.Exit(1)
		}
	}
}
