// Package main is the entry point for the otocomplete CLI.
package main

import (
	"os"

	"github.com/SeaOfBirds/roma-otocomplete/cmd/otocomplete/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
