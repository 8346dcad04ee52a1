package main

import (
	"os"

	"github.com/wonny/salesperf/cmd/salesperf/commands"
)

// main is the entry point for the salesperf CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
