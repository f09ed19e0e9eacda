package types

// MatchResult represents the outcome of matching one resume against one job.
// Results are produced fresh per call and carry no identity; persistence is
// the caller's concern.
type MatchResult struct {
	MatchPercentage float64        `json:"match_percentage"`
	MatchedSkills   []string       `json:"matched_skills"`
	MissingSkills   []string       `json:"missing_skills"`
	Heatmap         []HeatmapEntry `json:"heatmap"`
	Recommendation  string         `json:"recommendation"`
}

// HeatmapEntry pairs a job requirement with its best-matching resume fragment
// and the similarity score justifying the pairing.
type HeatmapEntry struct {
	Requirement    string  `json:"job_requirement"`
	ResumeFragment string  `json:"resume_fragment"`
	Score          float64 `json:"match_score"`
	SectionType    string  `json:"section_type"`
}

// RankedCandidate represents one candidate's position in a ranking for a job.
type RankedCandidate struct {
	CandidateID     string   `json:"candidate_id"`
	MatchPercentage float64  `json:"match_percentage"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
}

// Candidate pairs a candidate identifier with parsed resume data for ranking.
type Candidate struct {
	ID     string        `json:"id"`
	Resume *ParsedResume `json:"resume"`
}
