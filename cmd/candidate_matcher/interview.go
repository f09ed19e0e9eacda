package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/interview"
	"github.com/jonathan/candidate-matcher/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var interviewCmd = &cobra.Command{
	Use:   "interview-questions",
	Short: "Generate interview questions for a job's required skills",
	Long:  "Generates technical questions for each required skill (curated where available, generic otherwise) plus a fixed set of behavioral questions. Skills come from a job descriptor JSON or are passed directly.",
	RunE:  runInterview,
}

var (
	interviewJobFile string
	interviewSkills  []string
	interviewLevel   string
	interviewOutput  string
)

func init() {
	interviewCmd.Flags().StringVarP(&interviewJobFile, "job", "j", "", "Path to job descriptor JSON")
	interviewCmd.Flags().StringSliceVar(&interviewSkills, "skills", nil, "Comma-separated required skills (alternative to --job)")
	interviewCmd.Flags().StringVarP(&interviewLevel, "level", "l", "beginner", "Candidate experience level (beginner, intermediate, advanced)")
	interviewCmd.Flags().StringVarP(&interviewOutput, "output", "o", "", "Output path for questions JSON (default: stdout)")

	rootCmd.AddCommand(interviewCmd)
}

func runInterview(_ *cobra.Command, _ []string) error {
	if interviewJobFile == "" && len(interviewSkills) == 0 {
		return fmt.Errorf("either --job or --skills is required")
	}
	if interviewJobFile != "" && len(interviewSkills) > 0 {
		return fmt.Errorf("--job and --skills are mutually exclusive")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	cat, err := cfg.Catalog()
	if err != nil {
		return err
	}

	skills := interviewSkills
	if interviewJobFile != "" {
		var job types.JobDescriptor
		if err := readJSONFile(interviewJobFile, &job); err != nil {
			return err
		}
		skills = job.RequiredSkills
	}

	questions := interview.NewGenerator(cat).Generate(skills, strings.ToLower(interviewLevel))

	log.Info("generated interview questions",
		zap.Int("skills", len(skills)),
		zap.Int("questions", len(questions)),
	)

	return writeResult(interviewOutput, questions)
}
