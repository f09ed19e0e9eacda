// Package parsing applies pattern-matching heuristics to resume text to
// recover structured fields. Every heuristic is independent and best-effort:
// absence of a match yields an empty value, never an error.
package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/catalog"
	"github.com/jonathan/candidate-matcher/internal/types"
)

const (
	// nameMinLen and nameMaxLen bound plausible candidate-name line lengths.
	nameMinLen = 3
	nameMaxLen = 50
	// nameScanLines is how many leading lines are scanned for a name.
	nameScanLines = 5
	// experienceContextRadius is the character window kept around a year-range match.
	experienceContextRadius = 200
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`[+(]?[1-9][0-9 .\-()]{8,}[0-9]`)
	// Year ranges like "2019-2021", "2019 – Present", "2020 - Current".
	periodRe = regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(\d{4}|Present|Current)`)
	yearRe   = regexp.MustCompile(`\d{4}`)
)

var degreeKeywords = []string{"bachelor", "master", "phd", "b.tech", "m.tech", "mba", "b.sc", "m.sc"}

var certificationKeywords = []string{"certified", "certification", "certificate"}

// FieldExtractor recovers structured resume fields from plain text using the
// skill vocabulary of a catalog.
type FieldExtractor struct {
	vocabulary []string
}

// NewFieldExtractor creates a FieldExtractor backed by the given catalog.
func NewFieldExtractor(cat *catalog.Catalog) *FieldExtractor {
	return &FieldExtractor{vocabulary: cat.SkillVocabulary}
}

// Extract applies all field heuristics to the text. The heuristics only read
// the text, so their order does not affect the result.
func (e *FieldExtractor) Extract(text string) *types.ParsedResume {
	return &types.ParsedResume{
		RawText:        text,
		Name:           extractName(text),
		Email:          extractEmail(text),
		Phone:          extractPhone(text),
		Skills:         e.extractSkills(text),
		Education:      extractEducation(text),
		Experience:     ExtractExperience(text),
		Certifications: extractCertifications(text),
	}
}

// extractName returns the first of the leading lines that looks like a
// person's name: non-empty, plausible length, and not an email address.
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	limit := min(len(lines), nameScanLines)
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if len(line) > nameMinLen && len(line) < nameMaxLen && !strings.Contains(line, "@") {
			return line
		}
	}
	return ""
}

func extractEmail(text string) string {
	return emailRe.FindString(text)
}

func extractPhone(text string) string {
	return phoneRe.FindString(text)
}

// extractSkills returns the subset of the vocabulary present in the text as a
// case-insensitive substring, in vocabulary order.
func (e *FieldExtractor) extractSkills(text string) []string {
	textLower := strings.ToLower(text)
	found := make([]string, 0)
	for _, skill := range e.vocabulary {
		if strings.Contains(textLower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// extractEducation returns every line containing a degree keyword, with the
// line before and after as context.
func extractEducation(text string) []types.Education {
	lines := strings.Split(text, "\n")
	education := make([]types.Education, 0)

	for i, line := range lines {
		lineLower := strings.ToLower(line)
		for _, degree := range degreeKeywords {
			if strings.Contains(lineLower, degree) {
				start := max(0, i-1)
				end := min(len(lines), i+2)
				education = append(education, types.Education{
					Degree:  strings.TrimSpace(line),
					Context: strings.Join(lines[start:end], " "),
				})
				break
			}
		}
	}

	return education
}

// ExtractExperience returns every year-range match with a ±200 character
// context window. Ranges ending in "Present"/"Current" are marked open and
// carry no numeric end year; they are retained for display but excluded from
// timeline overlap checking. A range whose years are reversed is kept with
// its label only.
func ExtractExperience(text string) []types.ExperiencePeriod {
	experience := make([]types.ExperiencePeriod, 0)

	for _, loc := range periodRe.FindAllStringSubmatchIndex(text, -1) {
		matchStart, matchEnd := loc[0], loc[1]
		period := text[matchStart:matchEnd]

		ctxStart := max(0, matchStart-experienceContextRadius)
		ctxEnd := min(len(text), matchEnd+experienceContextRadius)

		entry := types.ExperiencePeriod{
			Period:  period,
			Context: strings.TrimSpace(text[ctxStart:ctxEnd]),
		}

		startYear, endYear, open := resolveYears(period)
		entry.Open = open
		if startYear > 0 && endYear > 0 && startYear <= endYear {
			entry.StartYear = startYear
			entry.EndYear = endYear
		}

		experience = append(experience, entry)
	}

	return experience
}

// resolveYears extracts the numeric year pair from a period label. Only
// labels with exactly two 4-digit tokens resolve to a bounded pair.
func resolveYears(period string) (start, end int, open bool) {
	periodLower := strings.ToLower(period)
	open = strings.Contains(periodLower, "present") || strings.Contains(periodLower, "current")

	years := yearRe.FindAllString(period, -1)
	if len(years) < 2 {
		return 0, 0, open
	}

	start, _ = strconv.Atoi(years[0])
	end, _ = strconv.Atoi(years[1])
	return start, end, open
}

// extractCertifications returns every line mentioning a certification keyword.
func extractCertifications(text string) []string {
	certifications := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		lineLower := strings.ToLower(line)
		for _, keyword := range certificationKeywords {
			if strings.Contains(lineLower, keyword) {
				certifications = append(certifications, strings.TrimSpace(line))
				break
			}
		}
	}
	return certifications
}
