package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/candidate-matcher/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank multiple candidates against a job",
	Long:  "Matches every candidate in a candidates JSON file against a job descriptor and outputs them sorted by match percentage, descending. Candidates with equal scores keep their input order.",
	RunE:  runRank,
}

var (
	rankCandidatesFile string
	rankJobFile        string
	rankOutput         string
)

func init() {
	rankCmd.Flags().StringVarP(&rankCandidatesFile, "candidates", "c", "", "Path to candidates JSON file (array of {id, resume}) (required)")
	rankCmd.Flags().StringVarP(&rankJobFile, "job", "j", "", "Path to job descriptor JSON (required)")
	rankCmd.Flags().StringVarP(&rankOutput, "output", "o", "", "Output path for ranking JSON (default: stdout)")

	if err := rankCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	var candidates []types.Candidate
	if err := readJSONFile(rankCandidatesFile, &candidates); err != nil {
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf("candidates file %s contains no candidates", rankCandidatesFile)
	}

	// Candidates without an ID get a generated one so ranking output stays
	// addressable.
	for i := range candidates {
		if candidates[i].ID == "" {
			candidates[i].ID = uuid.New().String()
		}
		if candidates[i].Resume == nil {
			return fmt.Errorf("candidate %s has no resume data", candidates[i].ID)
		}
	}

	var job types.JobDescriptor
	if err := readJSONFile(rankJobFile, &job); err != nil {
		return err
	}

	engine := newEngine(cfg)

	ctx, cancel := embedContext(cfg)
	defer cancel()

	ranked, err := engine.RankCandidates(ctx, candidates, &job)
	if err != nil {
		return err
	}

	log.Info("ranked candidates",
		zap.String("job_title", job.Title),
		zap.Int("candidates", len(ranked)),
	)

	return writeResult(rankOutput, ranked)
}
