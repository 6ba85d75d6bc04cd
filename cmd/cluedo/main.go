package main

import (
	"os"
)

func main() {
	// Cobra handles parsing the arguments.
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
}
