// Package interview generates interview questions for a job's required
// skills from the catalog's question bank.
package interview

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/catalog"
	"github.com/jonathan/candidate-matcher/internal/types"
)

const (
	// maxSkills is how many required skills receive technical questions.
	maxSkills = 5
	// maxQuestionsPerSkill caps template questions per known skill.
	maxQuestionsPerSkill = 2
	// maxBehavioral caps appended behavioral questions.
	maxBehavioral = 4
)

// Generator builds question lists from the catalog's question bank.
type Generator struct {
	technical  map[string][]string
	behavioral []string
}

// NewGenerator creates a Generator backed by the given catalog.
func NewGenerator(cat *catalog.Catalog) *Generator {
	return &Generator{
		technical:  cat.TechnicalQuestions,
		behavioral: cat.BehavioralQuestions,
	}
}

// Generate returns interview questions for the job's required skills:
// technical questions in skill-list order for the first five skills, then
// behavioral questions in catalog order. Skills without a template get one
// generic question. The level mirrors the skill-gap advisor's parameter;
// the question bank is currently level-independent.
func (g *Generator) Generate(requiredSkills []string, level string) []types.Question {
	questions := make([]types.Question, 0)

	skills := requiredSkills
	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}

	for _, skill := range skills {
		templates, known := g.technical[strings.ToLower(skill)]
		if !known {
			questions = append(questions, types.Question{
				Type:     types.QuestionTechnical,
				Skill:    skill,
				Question: fmt.Sprintf("Describe your experience with %s and provide a specific example.", skill),
			})
			continue
		}

		limit := min(len(templates), maxQuestionsPerSkill)
		for _, q := range templates[:limit] {
			questions = append(questions, types.Question{
				Type:     types.QuestionTechnical,
				Skill:    skill,
				Question: q,
			})
		}
	}

	limit := min(len(g.behavioral), maxBehavioral)
	for _, q := range g.behavioral[:limit] {
		questions = append(questions, types.Question{
			Type:     types.QuestionBehavioral,
			Question: q,
		})
	}

	return questions
}
