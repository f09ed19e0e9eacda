// Package fraud detects integrity risk signals in parsed resume data:
// disposable email domains, overlapping work timelines, and duplicated
// content. The detector is a pure function over its input; absence of data
// yields absence of flags, never an error.
package fraud

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/catalog"
	"github.com/jonathan/candidate-matcher/internal/types"
)

const (
	// minSentenceLen filters out fragments too short to be meaningful prose.
	minSentenceLen = 20
	// minSentenceCount is the minimum sample size for the duplicate-content ratio.
	minSentenceCount = 10
	// DefaultDuplicateRatio is the distinct/total sentence ratio below which
	// content is flagged as repetitive.
	DefaultDuplicateRatio = 0.7
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]`)

// Detector scans parsed resumes for fraud signals.
type Detector struct {
	disposableDomains []string
	duplicateRatio    float64
}

// NewDetector creates a Detector backed by the given catalog and the default
// duplicate-content ratio threshold.
func NewDetector(cat *catalog.Catalog) *Detector {
	return &Detector{
		disposableDomains: cat.DisposableEmailDomains,
		duplicateRatio:    DefaultDuplicateRatio,
	}
}

// WithDuplicateRatio returns a copy of the detector using the given
// distinct/total threshold for the duplicate-content check.
func (d *Detector) WithDuplicateRatio(ratio float64) *Detector {
	copied := *d
	copied.duplicateRatio = ratio
	return &copied
}

// Detect scans the parsed resume and returns a report of all fraud flags
// found, with a risk level derived from accumulated flag severity.
func (d *Detector) Detect(parsed *types.ParsedResume) *types.FraudReport {
	flags := make([]types.FraudFlag, 0)

	if d.isSuspiciousEmail(parsed.Email) {
		flags = append(flags, types.FraudFlag{
			Kind:     types.FlagSuspiciousEmail,
			Severity: types.SeverityMedium,
			Message:  "Email domain appears suspicious",
		})
	}

	if !timelineConsistent(parsed.Experience) {
		flags = append(flags, types.FraudFlag{
			Kind:     types.FlagTimelineInconsistency,
			Severity: types.SeverityHigh,
			Message:  "Work experience timeline has overlaps",
		})
	}

	if d.hasDuplicateContent(parsed.RawText) {
		flags = append(flags, types.FraudFlag{
			Kind:     types.FlagDuplicateContent,
			Severity: types.SeverityLow,
			Message:  "Resume contains repetitive content",
		})
	}

	return &types.FraudReport{
		Suspicious: len(flags) > 0,
		RiskLevel:  riskLevel(flags),
		Flags:      flags,
	}
}

// isSuspiciousEmail reports whether the email mentions a known disposable
// provider (substring, case-insensitive).
func (d *Detector) isSuspiciousEmail(email string) bool {
	if email == "" {
		return false
	}
	emailLower := strings.ToLower(email)
	for _, domain := range d.disposableDomains {
		if strings.Contains(emailLower, domain) {
			return true
		}
	}
	return false
}

// timelineConsistent reports whether no two bounded experience periods
// overlap. Unbounded periods are excluded from the check.
func timelineConsistent(experience []types.ExperiencePeriod) bool {
	bounded := make([]types.ExperiencePeriod, 0, len(experience))
	for _, p := range experience {
		if p.Bounded() {
			bounded = append(bounded, p)
		}
	}

	for i := 0; i < len(bounded); i++ {
		for j := i + 1; j < len(bounded); j++ {
			if bounded[i].Overlaps(bounded[j]) {
				return false
			}
		}
	}

	return true
}

// hasDuplicateContent splits the raw text into sentences and flags content
// where the distinct/total ratio falls below the threshold, given a large
// enough sample.
func (d *Detector) hasDuplicateContent(rawText string) bool {
	sentences := make([]string, 0)
	for _, s := range sentenceSplitRe.Split(rawText, -1) {
		s = strings.ToLower(strings.TrimSpace(s))
		if len(s) > minSentenceLen {
			sentences = append(sentences, s)
		}
	}

	if len(sentences) <= minSentenceCount {
		return false
	}

	unique := make(map[string]struct{}, len(sentences))
	for _, s := range sentences {
		unique[s] = struct{}{}
	}

	return float64(len(unique))/float64(len(sentences)) < d.duplicateRatio
}

// riskLevel maps the summed flag severity score to a coarse risk level.
func riskLevel(flags []types.FraudFlag) types.RiskLevel {
	if len(flags) == 0 {
		return types.RiskNone
	}

	total := 0
	for _, flag := range flags {
		total += flag.Severity.Score()
	}

	switch {
	case total >= 5:
		return types.RiskHigh
	case total >= 3:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}

// ResumeHash computes a stable content hash of resume text, used by callers
// for duplicate-resume detection across submissions.
func ResumeHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
