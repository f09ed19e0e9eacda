package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Extract structured fields from a resume document",
	Long:  "Extracts text from a PDF, DOCX, image, or plain-text resume and recovers structured fields (name, email, phone, skills, education, experience, certifications) with heuristics. Outputs the parsed resume as JSON.",
	RunE:  runParseResume,
}

var (
	parseResumeFile   string
	parseResumeOutput string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeFile, "file", "f", "", "Path to resume document (required)")
	parseResumeCmd.Flags().StringVarP(&parseResumeOutput, "output", "o", "", "Output path for parsed resume JSON (default: stdout)")

	if err := parseResumeCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	parsed, err := loadResume(cfg, log, parseResumeFile, "")
	if err != nil {
		return err
	}

	log.Info("parsed resume",
		zap.String("file", parseResumeFile),
		zap.Int("skills", len(parsed.Skills)),
		zap.Int("experience_periods", len(parsed.Experience)),
	)

	return writeResult(parseResumeOutput, parsed)
}
