// Package bias scans job posting text for gendered, age-coded, and
// exclusionary language. The scan is a pure function: one issue per matched
// lexicon term regardless of how often the term occurs.
package bias

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/catalog"
	"github.com/jonathan/candidate-matcher/internal/types"
)

// Detector scans posting text against the catalog's bias lexicons.
type Detector struct {
	genderedTerms     map[string][]string
	ageCodedTerms     []string
	exclusionaryTerms []string
}

// NewDetector creates a Detector backed by the given catalog.
func NewDetector(cat *catalog.Catalog) *Detector {
	return &Detector{
		genderedTerms:     cat.GenderedTerms,
		ageCodedTerms:     cat.AgeCodedTerms,
		exclusionaryTerms: cat.ExclusionaryTerms,
	}
}

// Detect scans the text and reports every lexicon term found as a
// case-insensitive substring.
func (d *Detector) Detect(text string) *types.BiasReport {
	textLower := strings.ToLower(text)
	issues := make([]types.BiasIssue, 0)

	// Iterate gender groups in sorted order so issue order is deterministic.
	genders := make([]string, 0, len(d.genderedTerms))
	for gender := range d.genderedTerms {
		genders = append(genders, gender)
	}
	sort.Strings(genders)

	for _, gender := range genders {
		for _, term := range d.genderedTerms[gender] {
			if strings.Contains(textLower, term) {
				issues = append(issues, types.BiasIssue{
					Kind:       types.BiasGender,
					Term:       term,
					Gender:     gender,
					Suggestion: fmt.Sprintf("Replace '%s' with gender-neutral language", term),
				})
			}
		}
	}

	for _, term := range d.ageCodedTerms {
		if strings.Contains(textLower, term) {
			issues = append(issues, types.BiasIssue{
				Kind:       types.BiasAge,
				Term:       term,
				Suggestion: fmt.Sprintf("'%s' may exclude older candidates", term),
			})
		}
	}

	for _, term := range d.exclusionaryTerms {
		if strings.Contains(textLower, term) {
			issues = append(issues, types.BiasIssue{
				Kind:       types.BiasExclusionary,
				Term:       term,
				Suggestion: fmt.Sprintf("'%s' may be exclusionary", term),
			})
		}
	}

	return &types.BiasReport{
		HasBias: len(issues) > 0,
		Count:   len(issues),
		Issues:  issues,
	}
}
