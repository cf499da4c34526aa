// Package config loads and saves candidate lists and resolves the storage
// settings of the otocomplete CLI.
package config

import (
	"fmt"
	"os"

	otocomplete "github.com/SeaOfBirds/roma-otocomplete"
	"gopkg.in/yaml.v3"
)

// Entry is one candidate as written in a candidates file.
type Entry struct {
	Label string `yaml:"label"`
	Kana  string `yaml:"kana"` // ひらがなかカタカナ。区切りは空白か「・」
}

// DB holds the storage settings.
type DB struct {
	Driver   string `mapstructure:"driver"` // "sqlite" or "mysql"
	DSN      string `mapstructure:"dsn"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Addr     string `mapstructure:"addr"`
	Port     string `mapstructure:"port"`
	Name     string `mapstructure:"name"`
}

// MySQLConfig returns the connection settings for a mysql DB.
func (d DB) MySQLConfig() *otocomplete.DBConfig {
	return otocomplete.NewDBConfig(d.User, d.Password, d.Addr, d.Port, d.Name)
}

// LoadCandidates loads candidates from a YAML file. IDs follow file order,
// starting at 1.
func LoadCandidates(path string) ([]otocomplete.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading candidates file: %w", err)
	}

	var file struct {
		Candidates []Entry `yaml:"candidates"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing candidates file: %w", err)
	}

	candidates := make([]otocomplete.Candidate, len(file.Candidates))
	for i, e := range file.Candidates {
		if e.Kana == "" {
			return nil, fmt.Errorf("candidate %d (%q): kana is empty", i, e.Label)
		}
		candidates[i] = otocomplete.Candidate{
			ID:    otocomplete.CandidateID(i + 1),
			Label: e.Label,
			Kana:  e.Kana,
		}
	}
	return candidates, nil
}

// SaveCandidates saves candidates to a YAML file. IDs are not written.
func SaveCandidates(path string, candidates []otocomplete.Candidate) error {
	entries := make([]Entry, len(candidates))
	for i, c := range candidates {
		entries[i] = Entry{Label: c.Label, Kana: c.Kana}
	}
	data := struct {
		Candidates []Entry `yaml:"candidates"`
	}{Candidates: entries}

	out, err := yaml.Marshal(&data)
	if err != nil {
		return fmt.Errorf("marshaling candidates: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing candidates file: %w", err)
	}

	return nil
}
