package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/fraud"
	"github.com/jonathan/candidate-matcher/internal/interview"
	"github.com/jonathan/candidate-matcher/internal/skillgap"
	"github.com/jonathan/candidate-matcher/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Run the full screening pipeline for one candidate",
	Long: `Runs the full candidate screening pipeline end-to-end: extraction -> parsing -> fraud check -> semantic match -> skill-gap plan -> interview questions.

Outputs a single combined screening report as JSON.`,
	RunE: runScreen,
}

// screeningReport is the combined output of one end-to-end screening run.
type screeningReport struct {
	Resume     *types.ParsedResume      `json:"resume"`
	ResumeHash string                   `json:"resume_hash"`
	Fraud      *types.FraudReport       `json:"fraud"`
	Match      *types.MatchResult       `json:"match"`
	SkillGap   []types.LearningResource `json:"skill_gap"`
	Interview  []types.Question         `json:"interview_questions"`
}

var (
	screenResumeFile string
	screenJobFile    string
	screenLevel      string
	screenOutput     string
)

func init() {
	screenCmd.Flags().StringVar(&screenResumeFile, "resume", "", "Path to resume document (required)")
	screenCmd.Flags().StringVarP(&screenJobFile, "job", "j", "", "Path to job descriptor JSON (required)")
	screenCmd.Flags().StringVarP(&screenLevel, "level", "l", "beginner", "Candidate experience level for the skill-gap plan and interview questions")
	screenCmd.Flags().StringVarP(&screenOutput, "output", "o", "", "Output path for screening report JSON (default: stdout)")

	if err := screenCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := screenCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(screenCmd)
}

func runScreen(_ *cobra.Command, _ []string) error {
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

	resume, err := loadResume(cfg, log, screenResumeFile, "")
	if err != nil {
		return err
	}
	log.Info("parsed resume", zap.Int("skills", len(resume.Skills)))

	var job types.JobDescriptor
	if err := readJSONFile(screenJobFile, &job); err != nil {
		return err
	}

	fraudReport := fraud.NewDetector(cat).WithDuplicateRatio(cfg.DuplicateRatio).Detect(resume)
	log.Info("fraud check complete", zap.String("risk_level", string(fraudReport.RiskLevel)))

	engine := newEngine(cfg)

	ctx, cancel := embedContext(cfg)
	defer cancel()

	match, err := engine.Match(ctx, resume, &job)
	if err != nil {
		return err
	}
	log.Info("matched resume against job", zap.Float64("match_percentage", match.MatchPercentage))

	level := strings.ToLower(screenLevel)
	report := &screeningReport{
		Resume:     resume,
		ResumeHash: fraud.ResumeHash(resume.RawText),
		Fraud:      fraudReport,
		Match:      match,
		SkillGap:   skillgap.NewAdvisor(cat).Plan(match.MissingSkills, level),
		Interview:  interview.NewGenerator(cat).Generate(job.RequiredSkills, level),
	}

	return writeResult(screenOutput, report)
}
