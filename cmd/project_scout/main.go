// Package main provides the entry point for the Project Scout CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "project_scout",
	Short: "Project suggestion pipeline for researchers",
	Long:  "Project Scout extracts structured facts from resume text and Google Scholar profiles, then generates ranked project suggestions from a curated catalog with optional AI augmentation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
