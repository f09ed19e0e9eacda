package fraud

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/candidate-matcher/internal/catalog"
	"github.com/jonathan/candidate-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDetector(t *testing.T) *Detector {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewDetector(cat)
}

func TestDetect_CleanResume(t *testing.T) {
	parsed := &types.ParsedResume{
		Email: "jane.doe@example.com",
		Experience: []types.ExperiencePeriod{
			{StartYear: 2015, EndYear: 2017},
			{StartYear: 2018, EndYear: 2020},
		},
	}

	report := newDetector(t).Detect(parsed)

	assert.False(t, report.Suspicious)
	assert.Equal(t, types.RiskNone, report.RiskLevel)
	assert.Empty(t, report.Flags)
}

func TestDetect_SuspiciousEmail(t *testing.T) {
	parsed := &types.ParsedResume{Email: "someone@tempmail.example.com"}

	report := newDetector(t).Detect(parsed)

	require.Len(t, report.Flags, 1)
	assert.Equal(t, types.FlagSuspiciousEmail, report.Flags[0].Kind)
	assert.Equal(t, types.SeverityMedium, report.Flags[0].Severity)
	assert.Equal(t, types.RiskLow, report.RiskLevel)
}

func TestDetect_TimelineOverlap(t *testing.T) {
	parsed := &types.ParsedResume{
		Experience: []types.ExperiencePeriod{
			{StartYear: 2019, EndYear: 2021},
			{StartYear: 2020, EndYear: 2022},
		},
	}

	report := newDetector(t).Detect(parsed)

	require.Len(t, report.Flags, 1)
	assert.Equal(t, types.FlagTimelineInconsistency, report.Flags[0].Kind)
	assert.Equal(t, types.SeverityHigh, report.Flags[0].Severity)
	assert.Equal(t, types.RiskMedium, report.RiskLevel)
}

func TestDetect_OpenPeriodsExcludedFromOverlapCheck(t *testing.T) {
	parsed := &types.ParsedResume{
		Experience: []types.ExperiencePeriod{
			{Period: "2019 - Present", StartYear: 2019, Open: true},
			{StartYear: 2020, EndYear: 2022},
		},
	}

	report := newDetector(t).Detect(parsed)

	assert.Empty(t, report.Flags)
}

func TestDetect_DuplicateContent(t *testing.T) {
	// 11 long sentences, only 6 distinct: ratio 6/11 ≈ 0.545 < 0.7.
	sentences := []string{
		"Responsible for building the core backend platform services",
		"Responsible for building the core backend platform services",
		"Responsible for building the core backend platform services",
		"Responsible for building the core backend platform services",
		"Responsible for building the core backend platform services",
		"Responsible for building the core backend platform services",
		"Led a team of five engineers across two offices",
		"Migrated the deployment pipeline to containers",
		"Improved request latency by forty percent",
		"Designed the internal billing reconciliation system",
		"Mentored junior engineers during onboarding",
	}

	parsed := &types.ParsedResume{RawText: strings.Join(sentences, ". ") + "."}

	report := newDetector(t).Detect(parsed)

	require.Len(t, report.Flags, 1)
	assert.Equal(t, types.FlagDuplicateContent, report.Flags[0].Kind)
	assert.Equal(t, types.SeverityLow, report.Flags[0].Severity)
	assert.Equal(t, types.RiskLow, report.RiskLevel)
}

func TestDetect_DistinctContentNotFlagged(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 11; i++ {
		sb.WriteString(fmt.Sprintf("This is distinct sentence number %d with plenty of text. ", i))
	}

	report := newDetector(t).Detect(&types.ParsedResume{RawText: sb.String()})

	assert.Empty(t, report.Flags)
}

func TestDetect_FewSentencesNeverFlagged(t *testing.T) {
	text := strings.Repeat("The very same repeated sentence appears here. ", 10)

	report := newDetector(t).Detect(&types.ParsedResume{RawText: text})

	assert.Empty(t, report.Flags)
}

func TestDetect_AllThreeFlagsIsHighRisk(t *testing.T) {
	duplicated := strings.Repeat("Responsible for the same backend platform again. ", 12)
	parsed := &types.ParsedResume{
		RawText: duplicated,
		Email:   "ghost@10minutemail.com",
		Experience: []types.ExperiencePeriod{
			{StartYear: 2019, EndYear: 2021},
			{StartYear: 2020, EndYear: 2022},
		},
	}

	report := newDetector(t).Detect(parsed)

	// medium(2) + high(3) + low(1) = 6 → high risk.
	require.Len(t, report.Flags, 3)
	assert.Equal(t, types.RiskHigh, report.RiskLevel)
}

func TestWithDuplicateRatio_Override(t *testing.T) {
	// 11 distinct sentences: ratio 1.0; only an absurd threshold flags it.
	var sb strings.Builder
	for i := 0; i < 11; i++ {
		sb.WriteString(fmt.Sprintf("Completely unique sentence number %d right here. ", i))
	}

	strict := newDetector(t).WithDuplicateRatio(1.1)
	report := strict.Detect(&types.ParsedResume{RawText: sb.String()})

	require.Len(t, report.Flags, 1)
	assert.Equal(t, types.FlagDuplicateContent, report.Flags[0].Kind)
}

func TestResumeHash_StableAndDistinct(t *testing.T) {
	a := ResumeHash("resume text")
	b := ResumeHash("resume text")
	c := ResumeHash("other text")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
