package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/skillgap"
	"github.com/jonathan/candidate-matcher/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var skillGapCmd = &cobra.Command{
	Use:   "skill-gap",
	Short: "Build a learning plan for missing skills",
	Long:  "Produces a learning plan for a list of missing skills, either passed directly or taken from a previous match result. Known skills get curated resources at the requested level; unknown skills get a generic search plan.",
	RunE:  runSkillGap,
}

var (
	skillGapSkills    []string
	skillGapMatchFile string
	skillGapLevel     string
	skillGapOutput    string
)

func init() {
	skillGapCmd.Flags().StringSliceVar(&skillGapSkills, "skills", nil, "Comma-separated missing skills")
	skillGapCmd.Flags().StringVar(&skillGapMatchFile, "from-match", "", "Path to match result JSON to take missing skills from (alternative to --skills)")
	skillGapCmd.Flags().StringVarP(&skillGapLevel, "level", "l", "beginner", "Learning level (beginner, intermediate, advanced)")
	skillGapCmd.Flags().StringVarP(&skillGapOutput, "output", "o", "", "Output path for learning plan JSON (default: stdout)")

	rootCmd.AddCommand(skillGapCmd)
}

func runSkillGap(_ *cobra.Command, _ []string) error {
	if len(skillGapSkills) == 0 && skillGapMatchFile == "" {
		return fmt.Errorf("either --skills or --from-match is required")
	}
	if len(skillGapSkills) > 0 && skillGapMatchFile != "" {
		return fmt.Errorf("--skills and --from-match are mutually exclusive")
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

	missing := skillGapSkills
	if skillGapMatchFile != "" {
		var result types.MatchResult
		if err := readJSONFile(skillGapMatchFile, &result); err != nil {
			return err
		}
		missing = result.MissingSkills
	}

	plan := skillgap.NewAdvisor(cat).Plan(missing, strings.ToLower(skillGapLevel))

	log.Info("built learning plan",
		zap.Int("skills", len(missing)),
		zap.String("level", skillGapLevel),
	)

	return writeResult(skillGapOutput, plan)
}
