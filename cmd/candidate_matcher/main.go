// Package main provides the candidate-matcher CLI: resume text extraction
// and field parsing, semantic matching against job postings, candidate
// ranking, fraud and bias signal detection, skill-gap planning, and
// interview question generation.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "candidate_matcher",
	Short: "Candidate-job matching and signal engine",
	Long:  "Candidate Matcher extracts structured data from resume documents, scores candidates against job postings with explainable semantic matching, and surfaces fraud and bias signals.",
}

var (
	configPath string
	jsonLogs   bool
	debug      bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
