package main

import (
	"fmt"

	"github.com/jonathan/candidate-matcher/internal/bias"
	"github.com/jonathan/candidate-matcher/internal/posting"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var detectBiasCmd = &cobra.Command{
	Use:   "detect-bias",
	Short: "Check job posting text for biased language",
	Long:  "Scans a job posting (plain text or HTML) for gendered, age-coded, and exclusionary language and outputs each flagged term with a neutral rewording suggestion.",
	RunE:  runDetectBias,
}

var (
	detectBiasPostingFile string
	detectBiasOutput      string
)

func init() {
	detectBiasCmd.Flags().StringVarP(&detectBiasPostingFile, "posting", "p", "", "Path to job posting file (.txt, .html) (required)")
	detectBiasCmd.Flags().StringVarP(&detectBiasOutput, "output", "o", "", "Output path for bias report JSON (default: stdout)")

	if err := detectBiasCmd.MarkFlagRequired("posting"); err != nil {
		panic(fmt.Sprintf("failed to mark posting flag as required: %v", err))
	}

	rootCmd.AddCommand(detectBiasCmd)
}

func runDetectBias(_ *cobra.Command, _ []string) error {
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

	text, err := posting.LoadText(detectBiasPostingFile)
	if err != nil {
		return err
	}

	report := bias.NewDetector(cat).Detect(text)

	log.Info("bias check complete",
		zap.String("posting", detectBiasPostingFile),
		zap.Bool("has_bias", report.HasBias),
		zap.Int("issues", report.Count),
	)

	return writeResult(detectBiasOutput, report)
}
