package matching

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/embedding"
	"github.com/jonathan/candidate-matcher/internal/types"
)

// resumeFragment is one embeddable slice of a resume: the skills block or a
// single experience context.
type resumeFragment struct {
	text        string
	sectionType string
	vector      []float32
}

// buildHeatmap pairs each of the first few job requirements with its
// best-matching resume fragment. Entries preserve requirement order; a
// requirement with no fragment above the similarity threshold is omitted.
func (e *Engine) buildHeatmap(ctx context.Context, resume *types.ParsedResume, job *types.JobDescriptor) ([]types.HeatmapEntry, error) {
	requirements := splitRequirements(job.Requirements, e.heatmapLimit)
	fragments := collectFragments(resume)

	heatmap := make([]types.HeatmapEntry, 0, len(requirements))
	if len(requirements) == 0 || len(fragments) == 0 {
		return heatmap, nil
	}

	// Fragment vectors are reused across requirements.
	for i := range fragments {
		vec, err := e.embedder.Embed(ctx, fragments[i].text)
		if err != nil {
			return nil, fmt.Errorf("failed to embed resume fragment: %w", err)
		}
		fragments[i].vector = vec
	}

	for _, requirement := range requirements {
		reqVec, err := e.embedder.Embed(ctx, requirement)
		if err != nil {
			return nil, fmt.Errorf("failed to embed job requirement: %w", err)
		}

		var best *resumeFragment
		bestScore := 0.0
		for i := range fragments {
			score := embedding.Cosine(reqVec, fragments[i].vector)
			// Strict comparison keeps the first fragment on ties.
			if score > bestScore {
				bestScore = score
				best = &fragments[i]
			}
		}

		if best == nil || bestScore <= e.heatmapThreshold {
			continue
		}

		heatmap = append(heatmap, types.HeatmapEntry{
			Requirement:    requirement,
			ResumeFragment: truncate(best.text, fragmentDisplayCap),
			Score:          round2(bestScore),
			SectionType:    best.sectionType,
		})
	}

	return heatmap, nil
}

// splitRequirements splits requirements text into trimmed non-empty sentences,
// keeping at most limit of them.
func splitRequirements(requirements string, limit int) []string {
	sentences := make([]string, 0)
	for _, s := range requirementSplitRe.Split(requirements, -1) {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		sentences = append(sentences, s)
		if len(sentences) == limit {
			break
		}
	}
	return sentences
}

// collectFragments builds the embeddable resume fragments: one for the skills
// block, one per experience context (capped for embedding).
func collectFragments(resume *types.ParsedResume) []resumeFragment {
	fragments := make([]resumeFragment, 0, 1+len(resume.Experience))

	if len(resume.Skills) > 0 {
		fragments = append(fragments, resumeFragment{
			text:        "Skills: " + strings.Join(resume.Skills, ", "),
			sectionType: sectionSkills,
		})
	}

	for _, exp := range resume.Experience {
		text := truncate(exp.Context, fragmentEmbedCap)
		if text == "" {
			continue
		}
		fragments = append(fragments, resumeFragment{
			text:        text,
			sectionType: sectionExperience,
		})
	}

	return fragments
}

func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
