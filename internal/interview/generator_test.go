package interview

import (
	"testing"

	"github.com/jonathan/candidate-matcher/internal/catalog"
	"github.com/jonathan/candidate-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator(t *testing.T) *Generator {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewGenerator(cat)
}

func TestGenerate_KnownSkillGetsTwoTemplateQuestions(t *testing.T) {
	questions := newGenerator(t).Generate([]string{"python"}, "mid")

	technical := filterByType(questions, types.QuestionTechnical)
	require.Len(t, technical, 2)
	assert.Equal(t, "python", technical[0].Skill)
	assert.Contains(t, technical[0].Question, "lists and tuples")
}

func TestGenerate_UnknownSkillGetsGenericQuestion(t *testing.T) {
	questions := newGenerator(t).Generate([]string{"Erlang"}, "mid")

	technical := filterByType(questions, types.QuestionTechnical)
	require.Len(t, technical, 1)
	assert.Contains(t, technical[0].Question, "Describe your experience with Erlang")
}

func TestGenerate_AtMostFiveSkills(t *testing.T) {
	skills := []string{"a", "b", "c", "d", "e", "f", "g"}

	questions := newGenerator(t).Generate(skills, "mid")

	technical := filterByType(questions, types.QuestionTechnical)
	assert.Len(t, technical, 5)
	assert.Equal(t, "e", technical[len(technical)-1].Skill)
}

func TestGenerate_BehavioralAppendedInCatalogOrder(t *testing.T) {
	questions := newGenerator(t).Generate([]string{"python"}, "mid")

	behavioral := filterByType(questions, types.QuestionBehavioral)
	require.Len(t, behavioral, 4)
	assert.Contains(t, behavioral[0].Question, "debug a complex issue")

	// Behavioral questions come after all technical ones.
	assert.Equal(t, types.QuestionBehavioral, questions[len(questions)-1].Type)
	assert.Equal(t, types.QuestionTechnical, questions[0].Type)
}

func TestGenerate_NoSkillsStillYieldsBehavioral(t *testing.T) {
	questions := newGenerator(t).Generate(nil, "mid")

	require.Len(t, questions, 4)
	for _, q := range questions {
		assert.Equal(t, types.QuestionBehavioral, q.Type)
	}
}

func TestGenerate_LevelIndependentQuestionBank(t *testing.T) {
	g := newGenerator(t)

	beginner := g.Generate([]string{"python", "react"}, "beginner")
	advanced := g.Generate([]string{"python", "react"}, "advanced")

	assert.Equal(t, beginner, advanced)
}

func TestGenerate_CaseFoldedTemplateLookup(t *testing.T) {
	questions := newGenerator(t).Generate([]string{"Python"}, "mid")

	technical := filterByType(questions, types.QuestionTechnical)
	require.Len(t, technical, 2)
	assert.Equal(t, "Python", technical[0].Skill)
}

func filterByType(questions []types.Question, questionType string) []types.Question {
	filtered := make([]types.Question, 0)
	for _, q := range questions {
		if q.Type == questionType {
			filtered = append(filtered, q)
		}
	}
	return filtered
}
