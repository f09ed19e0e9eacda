package matching

import (
	"context"
	"fmt"
	"sort"

	"github.com/jonathan/candidate-matcher/internal/types"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentMatches bounds parallel embedding work during ranking.
const maxConcurrentMatches = 4

// RankCandidates matches every candidate against the job independently and
// returns them sorted by match percentage, descending. The sort is stable:
// candidates with equal scores keep their input order. Matching runs in
// parallel; each call shares only the read-only embedder.
func (e *Engine) RankCandidates(ctx context.Context, candidates []types.Candidate, job *types.JobDescriptor) ([]types.RankedCandidate, error) {
	ranked := make([]types.RankedCandidate, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentMatches)

	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			result, err := e.Match(gctx, candidate.Resume, job)
			if err != nil {
				return fmt.Errorf("failed to match candidate %s: %w", candidate.ID, err)
			}
			ranked[i] = types.RankedCandidate{
				CandidateID:     candidate.ID,
				MatchPercentage: result.MatchPercentage,
				MatchedSkills:   result.MatchedSkills,
				MissingSkills:   result.MissingSkills,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchPercentage > ranked[j].MatchPercentage
	})

	return ranked, nil
}
