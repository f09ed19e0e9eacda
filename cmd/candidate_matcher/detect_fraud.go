package main

import (
	"fmt"

	"github.com/jonathan/candidate-matcher/internal/fraud"
	"github.com/jonathan/candidate-matcher/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var detectFraudCmd = &cobra.Command{
	Use:   "detect-fraud",
	Short: "Check a resume for fraud indicators",
	Long:  "Scans a resume for fraud indicators (disposable email domain, overlapping work periods, duplicated content) and outputs a fraud report with an aggregate risk level and a content hash for cross-submission duplicate tracking.",
	RunE:  runDetectFraud,
}

// fraudOutput extends the fraud report with the content hash used to spot the
// same resume submitted under different identities.
type fraudOutput struct {
	*types.FraudReport
	ResumeHash string `json:"resume_hash"`
}

var (
	detectFraudResumeFile string
	detectFraudResumeJSON string
	detectFraudOutput     string
)

func init() {
	detectFraudCmd.Flags().StringVar(&detectFraudResumeFile, "resume", "", "Path to resume document (PDF, DOCX, image, or text)")
	detectFraudCmd.Flags().StringVar(&detectFraudResumeJSON, "resume-json", "", "Path to already-parsed resume JSON (alternative to --resume)")
	detectFraudCmd.Flags().StringVarP(&detectFraudOutput, "output", "o", "", "Output path for fraud report JSON (default: stdout)")

	rootCmd.AddCommand(detectFraudCmd)
}

func runDetectFraud(_ *cobra.Command, _ []string) error {
	if detectFraudResumeFile == "" && detectFraudResumeJSON == "" {
		return fmt.Errorf("either --resume or --resume-json is required")
	}
	if detectFraudResumeFile != "" && detectFraudResumeJSON != "" {
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

	cat, err := cfg.Catalog()
	if err != nil {
		return err
	}

	resume, err := loadResume(cfg, log, detectFraudResumeFile, detectFraudResumeJSON)
	if err != nil {
		return err
	}

	detector := fraud.NewDetector(cat).WithDuplicateRatio(cfg.DuplicateRatio)
	report := detector.Detect(resume)

	log.Info("fraud check complete",
		zap.Bool("suspicious", report.Suspicious),
		zap.String("risk_level", string(report.RiskLevel)),
		zap.Int("flags", len(report.Flags)),
	)

	return writeResult(detectFraudOutput, fraudOutput{
		FraudReport: report,
		ResumeHash:  fraud.ResumeHash(resume.RawText),
	})
}
