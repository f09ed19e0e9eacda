package parsing

import (
	"testing"

	"github.com/jonathan/candidate-matcher/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com | +1 (555) 123-4567

Master of Science in Computer Science
University of Somewhere, 2014-2016

Experience
Senior Backend Engineer, Acme Corp, 2019 - Present
Built services in Go and Python, deployed with Docker and Kubernetes on AWS.

Backend Engineer, Widgets Inc, 2016-2019
Maintained PostgreSQL databases and Django applications.

AWS Certified Solutions Architect
`

func newExtractor(t *testing.T) *FieldExtractor {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewFieldExtractor(cat)
}

func TestExtract_Name(t *testing.T) {
	parsed := newExtractor(t).Extract(sampleResume)
	assert.Equal(t, "Jane Doe", parsed.Name)
}

func TestExtract_NameSkipsEmailLines(t *testing.T) {
	parsed := newExtractor(t).Extract("jane.doe@example.com\nJane Doe\nmore text")
	assert.Equal(t, "Jane Doe", parsed.Name)
}

func TestExtract_NameAbsent(t *testing.T) {
	parsed := newExtractor(t).Extract("a\nb\nc\nd\ne\nJane Doe appears too late here")
	assert.Empty(t, parsed.Name)
}

func TestExtract_EmailAndPhone(t *testing.T) {
	parsed := newExtractor(t).Extract(sampleResume)

	assert.Equal(t, "jane.doe@example.com", parsed.Email)
	assert.NotEmpty(t, parsed.Phone)
}

func TestExtract_SkillsInVocabularyOrder(t *testing.T) {
	parsed := newExtractor(t).Extract(sampleResume)

	// python precedes go in the vocabulary, so it must precede it here too.
	assert.Contains(t, parsed.Skills, "python")
	assert.Contains(t, parsed.Skills, "go")
	assert.Contains(t, parsed.Skills, "docker")
	assert.Contains(t, parsed.Skills, "kubernetes")
	assert.Contains(t, parsed.Skills, "aws")
	assert.Contains(t, parsed.Skills, "postgresql")
	assert.Contains(t, parsed.Skills, "django")

	idxPython := indexOf(parsed.Skills, "python")
	idxGo := indexOf(parsed.Skills, "go")
	assert.Less(t, idxPython, idxGo)
}

func TestExtract_Education(t *testing.T) {
	parsed := newExtractor(t).Extract(sampleResume)

	require.Len(t, parsed.Education, 1)
	assert.Equal(t, "Master of Science in Computer Science", parsed.Education[0].Degree)
	assert.Contains(t, parsed.Education[0].Context, "University of Somewhere")
}

func TestExtract_Experience(t *testing.T) {
	parsed := newExtractor(t).Extract(sampleResume)

	require.Len(t, parsed.Experience, 3)

	// 2014-2016 education range is picked up by the year-range heuristic too.
	assert.Equal(t, 2014, parsed.Experience[0].StartYear)
	assert.Equal(t, 2016, parsed.Experience[0].EndYear)

	openPeriod := parsed.Experience[1]
	assert.True(t, openPeriod.Open)
	assert.False(t, openPeriod.Bounded())
	assert.Contains(t, openPeriod.Context, "Acme Corp")

	assert.Equal(t, 2016, parsed.Experience[2].StartYear)
	assert.Equal(t, 2019, parsed.Experience[2].EndYear)
}

func TestExtractExperience_EnDash(t *testing.T) {
	periods := ExtractExperience("Worked at Foo 2018 – 2020 building things.")

	require.Len(t, periods, 1)
	assert.Equal(t, 2018, periods[0].StartYear)
	assert.Equal(t, 2020, periods[0].EndYear)
}

func TestExtractExperience_ReversedYearsStayUnbounded(t *testing.T) {
	periods := ExtractExperience("Contract role 2021-2019 at Bar.")

	require.Len(t, periods, 1)
	assert.False(t, periods[0].Bounded())
	assert.Equal(t, "2021-2019", periods[0].Period)
}

func TestExtract_Certifications(t *testing.T) {
	parsed := newExtractor(t).Extract(sampleResume)

	require.Len(t, parsed.Certifications, 1)
	assert.Equal(t, "AWS Certified Solutions Architect", parsed.Certifications[0])
}

func TestExtract_EmptyText(t *testing.T) {
	parsed := newExtractor(t).Extract("")

	assert.Empty(t, parsed.Name)
	assert.Empty(t, parsed.Email)
	assert.Empty(t, parsed.Phone)
	assert.Empty(t, parsed.Skills)
	assert.Empty(t, parsed.Education)
	assert.Empty(t, parsed.Experience)
	assert.Empty(t, parsed.Certifications)
}

func indexOf(items []string, target string) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return -1
}
