// Package types provides type definitions for structured data used throughout the candidate-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ParsedResume represents structured data recovered from a resume document.
// All fields are best-effort: a heuristic that finds nothing leaves its field
// empty rather than producing an error.
type ParsedResume struct {
	RawText        string             `json:"raw_text"`
	Name           string             `json:"name,omitempty"`
	Email          string             `json:"email,omitempty"`
	Phone          string             `json:"phone,omitempty"`
	Skills         []string           `json:"skills"`
	Education      []Education        `json:"education"`
	Experience     []ExperiencePeriod `json:"experience"`
	Certifications []string           `json:"certifications"`
}

// Education represents a single degree mention with surrounding context.
type Education struct {
	Degree  string `json:"degree"`
	Context string `json:"context"`
}

// ExperiencePeriod represents a work period recovered from a year-range match.
// StartYear and EndYear are zero when the period text did not contain two
// numeric years; Open marks periods whose upper bound is "Present"/"Current".
type ExperiencePeriod struct {
	Period    string `json:"period"`
	StartYear int    `json:"start_year,omitempty"`
	EndYear   int    `json:"end_year,omitempty"`
	Open      bool   `json:"open,omitempty"`
	Context   string `json:"context"`
}

// Bounded reports whether the period resolved to a numeric year pair.
// Unbounded periods are retained for display but excluded from timeline
// overlap checking.
func (p ExperiencePeriod) Bounded() bool {
	return p.StartYear > 0 && p.EndYear > 0
}

// Overlaps reports whether two bounded periods overlap. Two periods overlap
// iff neither ends strictly before the other starts.
func (p ExperiencePeriod) Overlaps(other ExperiencePeriod) bool {
	if !p.Bounded() || !other.Bounded() {
		return false
	}
	return !(p.EndYear < other.StartYear || other.EndYear < p.StartYear)
}
