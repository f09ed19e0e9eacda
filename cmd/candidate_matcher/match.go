package main

import (
	"fmt"

	"github.com/jonathan/candidate-matcher/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job with an explainable heatmap",
	Long:  "Embeds a resume and a job descriptor, computes a semantic match percentage, diffs required skills against resume skills, and explains the score with a per-requirement heatmap of best-matching resume fragments.",
	RunE:  runMatch,
}

var (
	matchResumeFile string
	matchResumeJSON string
	matchJobFile    string
	matchOutput     string
)

func init() {
	matchCmd.Flags().StringVar(&matchResumeFile, "resume", "", "Path to resume document (PDF, DOCX, image, or text)")
	matchCmd.Flags().StringVar(&matchResumeJSON, "resume-json", "", "Path to already-parsed resume JSON (alternative to --resume)")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job descriptor JSON (required)")
	matchCmd.Flags().StringVarP(&matchOutput, "output", "o", "", "Output path for match result JSON (default: stdout)")

	if err := matchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	if matchResumeFile == "" && matchResumeJSON == "" {
		return fmt.Errorf("either --resume or --resume-json is required")
	}
	if matchResumeFile != "" && matchResumeJSON != "" {
		return fmt.Errorf("--resume and --resume-json are mutually exclusive")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	resume, err := loadResume(cfg, log, matchResumeFile, matchResumeJSON)
	if err != nil {
		return err
	}

	var job types.JobDescriptor
	if err := readJSONFile(matchJobFile, &job); err != nil {
		return err
	}

	engine := newEngine(cfg)

	ctx, cancel := embedContext(cfg)
	defer cancel()

	result, err := engine.Match(ctx, resume, &job)
	if err != nil {
		return err
	}

	log.Info("matched resume against job",
		zap.String("job_title", job.Title),
		zap.Float64("match_percentage", result.MatchPercentage),
		zap.Int("heatmap_entries", len(result.Heatmap)),
	)

	return writeResult(matchOutput, result)
}
