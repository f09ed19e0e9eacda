package skillgap

import (
	"testing"

	"github.com/jonathan/candidate-matcher/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdvisor(t *testing.T) *Advisor {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewAdvisor(cat)
}

func TestPlan_KnownSkillEmitsAllResources(t *testing.T) {
	plan := newAdvisor(t).Plan([]string{"python"}, "beginner")

	require.Len(t, plan, 2)
	for _, resource := range plan {
		assert.Equal(t, "python", resource.Skill)
		assert.Equal(t, "beginner", resource.Level)
		assert.NotEmpty(t, resource.Name)
		assert.NotEmpty(t, resource.Platform)
	}
}

func TestPlan_UnknownSkillFallsBack(t *testing.T) {
	plan := newAdvisor(t).Plan([]string{"COBOL"}, "beginner")

	require.Len(t, plan, 1)
	assert.Equal(t, "COBOL", plan[0].Skill)
	assert.Equal(t, "COBOL Tutorial", plan[0].Name)
	assert.Equal(t, "YouTube/Google", plan[0].Platform)
}

func TestPlan_UnknownLevelFallsBack(t *testing.T) {
	plan := newAdvisor(t).Plan([]string{"react"}, "expert")

	require.Len(t, plan, 1)
	assert.Equal(t, "react Tutorial", plan[0].Name)
	assert.Equal(t, "expert", plan[0].Level)
}

func TestPlan_MixedSkillsPreserveOrder(t *testing.T) {
	plan := newAdvisor(t).Plan([]string{"python", "COBOL", "javascript"}, "beginner")

	require.Len(t, plan, 4)
	assert.Equal(t, "python", plan[0].Skill)
	assert.Equal(t, "python", plan[1].Skill)
	assert.Equal(t, "COBOL", plan[2].Skill)
	assert.Equal(t, "javascript", plan[3].Skill)
}

func TestPlan_CaseFoldedLookup(t *testing.T) {
	plan := newAdvisor(t).Plan([]string{"Python"}, "intermediate")

	require.Len(t, plan, 1)
	assert.Equal(t, "Python Beyond Basics", plan[0].Name)
	assert.Equal(t, "Python", plan[0].Skill)
}

func TestPlan_Empty(t *testing.T) {
	assert.Empty(t, newAdvisor(t).Plan(nil, "beginner"))
}
