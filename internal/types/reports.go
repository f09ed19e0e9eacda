package types

// Severity is the weight class of a single fraud flag.
type Severity string

// Severity levels in increasing order of weight.
const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Score returns the numeric weight used for risk-level accumulation.
func (s Severity) Score() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	default:
		return 0
	}
}

// RiskLevel is a coarse ordinal summarizing accumulated fraud-flag severity.
type RiskLevel string

// Risk levels derived from the severity score sum.
const (
	RiskNone   RiskLevel = "none"
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Fraud flag kinds.
const (
	FlagSuspiciousEmail       = "suspicious_email"
	FlagTimelineInconsistency = "timeline_inconsistency"
	FlagDuplicateContent      = "duplicate_content"
)

// FraudFlag represents a single fraud indicator found in a resume.
type FraudFlag struct {
	Kind     string   `json:"type"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// FraudReport summarizes the fraud indicators found in a resume.
type FraudReport struct {
	Suspicious bool        `json:"is_suspicious"`
	RiskLevel  RiskLevel   `json:"risk_level"`
	Flags      []FraudFlag `json:"flags"`
}

// Bias issue kinds.
const (
	BiasGender       = "gender_bias"
	BiasAge          = "age_bias"
	BiasExclusionary = "exclusionary"
)

// BiasIssue represents one biased term found in job posting text.
type BiasIssue struct {
	Kind       string `json:"type"`
	Term       string `json:"word"`
	Gender     string `json:"gender,omitempty"`
	Suggestion string `json:"suggestion"`
}

// BiasReport summarizes the biased language found in job posting text.
type BiasReport struct {
	HasBias bool        `json:"has_bias"`
	Count   int         `json:"bias_count"`
	Issues  []BiasIssue `json:"issues"`
}
