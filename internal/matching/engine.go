// Package matching scores parsed resumes against job descriptors using
// embedding-based semantic similarity, and explains each score with a
// per-requirement heatmap of best-matching resume fragments.
package matching

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/embedding"
	"github.com/jonathan/candidate-matcher/internal/types"
)

const (
	// DefaultHeatmapThreshold is the minimum fragment similarity for a
	// heatmap entry.
	DefaultHeatmapThreshold = 0.3
	// DefaultHeatmapLimit caps how many job requirements the heatmap covers.
	DefaultHeatmapLimit = 5
	// fragmentEmbedCap bounds the text embedded per experience fragment.
	fragmentEmbedCap = 200
	// fragmentDisplayCap bounds the fragment text carried in a heatmap entry.
	fragmentDisplayCap = 150
)

// Section types attached to heatmap fragments.
const (
	sectionSkills     = "skills"
	sectionExperience = "experience"
)

var requirementSplitRe = regexp.MustCompile(`[.!?]`)

// Engine matches resumes against jobs. It holds only the shared read-only
// embedding capability and policy thresholds, so one Engine is safe for
// concurrent use.
type Engine struct {
	embedder         embedding.Embedder
	heatmapThreshold float64
	heatmapLimit     int
}

// NewEngine creates an Engine with default policy thresholds.
func NewEngine(embedder embedding.Embedder) *Engine {
	return &Engine{
		embedder:         embedder,
		heatmapThreshold: DefaultHeatmapThreshold,
		heatmapLimit:     DefaultHeatmapLimit,
	}
}

// WithHeatmapThreshold returns a copy of the engine using the given minimum
// fragment similarity for heatmap entries.
func (e *Engine) WithHeatmapThreshold(threshold float64) *Engine {
	copied := *e
	copied.heatmapThreshold = threshold
	return &copied
}

// WithHeatmapLimit returns a copy of the engine covering at most limit job
// requirements in the heatmap.
func (e *Engine) WithHeatmapLimit(limit int) *Engine {
	copied := *e
	copied.heatmapLimit = limit
	return &copied
}

// Match scores one resume against one job. Embedding failures are hard
// errors: a score without a model would be meaningless, so there is no
// zero-score fallback. Missing job fields degrade gracefully instead — an
// empty requirements text simply produces an empty heatmap.
func (e *Engine) Match(ctx context.Context, resume *types.ParsedResume, job *types.JobDescriptor) (*types.MatchResult, error) {
	resumeDoc := buildResumeDoc(resume)
	jobDoc := buildJobDoc(job)

	resumeVec, err := e.embedder.Embed(ctx, resumeDoc)
	if err != nil {
		return nil, fmt.Errorf("failed to embed resume: %w", err)
	}

	jobVec, err := e.embedder.Embed(ctx, jobDoc)
	if err != nil {
		return nil, fmt.Errorf("failed to embed job: %w", err)
	}

	similarity := embedding.Cosine(resumeVec, jobVec)
	matchPercentage := round2(math.Max(0, similarity) * 100)

	matched, missing := diffSkills(resume.Skills, job.RequiredSkills)

	heatmap, err := e.buildHeatmap(ctx, resume, job)
	if err != nil {
		return nil, err
	}

	return &types.MatchResult{
		MatchPercentage: matchPercentage,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		Heatmap:         heatmap,
		Recommendation:  recommendation(matchPercentage, missing),
	}, nil
}

// buildResumeDoc concatenates labeled resume sections, skipping sections with
// no content.
func buildResumeDoc(resume *types.ParsedResume) string {
	parts := make([]string, 0, 3)

	if len(resume.Skills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(resume.Skills, ", "))
	}

	if len(resume.Experience) > 0 {
		contexts := make([]string, 0, len(resume.Experience))
		for _, exp := range resume.Experience {
			contexts = append(contexts, exp.Context)
		}
		parts = append(parts, "Experience: "+strings.Join(contexts, " "))
	}

	if len(resume.Education) > 0 {
		degrees := make([]string, 0, len(resume.Education))
		for _, edu := range resume.Education {
			degrees = append(degrees, edu.Degree)
		}
		parts = append(parts, "Education: "+strings.Join(degrees, " "))
	}

	return strings.Join(parts, " ")
}

// buildJobDoc concatenates the job's text fields with a labeled
// required-skills list.
func buildJobDoc(job *types.JobDescriptor) string {
	parts := []string{job.Title, job.Description, job.Requirements}

	if len(job.RequiredSkills) > 0 {
		parts = append(parts, "Required skills: "+strings.Join(job.RequiredSkills, ", "))
	}

	return strings.Join(parts, " ")
}

// diffSkills case-folds both skill lists and returns the intersection and the
// job-only remainder. Orders follow the job's required-skill order so results
// are deterministic under set semantics.
func diffSkills(resumeSkills, requiredSkills []string) (matched, missing []string) {
	resumeSet := make(map[string]struct{}, len(resumeSkills))
	for _, skill := range resumeSkills {
		resumeSet[strings.ToLower(skill)] = struct{}{}
	}

	matched = make([]string, 0)
	missing = make([]string, 0)
	seen := make(map[string]struct{}, len(requiredSkills))
	for _, skill := range requiredSkills {
		folded := strings.ToLower(skill)
		if _, dup := seen[folded]; dup {
			continue
		}
		seen[folded] = struct{}{}

		if _, ok := resumeSet[folded]; ok {
			matched = append(matched, folded)
		} else {
			missing = append(missing, folded)
		}
	}

	return matched, missing
}

// recommendation selects the tiered message for a match percentage.
func recommendation(matchPercentage float64, missing []string) string {
	switch {
	case matchPercentage >= 80:
		return "Excellent match! Highly recommended for interview."
	case matchPercentage >= 60:
		return fmt.Sprintf("Good match. Consider upskilling in: %s", strings.Join(capList(missing, 3), ", "))
	case matchPercentage >= 40:
		return fmt.Sprintf("Moderate match. Significant skill gaps: %s", strings.Join(capList(missing, 5), ", "))
	default:
		return "Low match. Consider other opportunities or extensive upskilling."
	}
}

func capList(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
