package types

// JobDescriptor represents a job posting as supplied by the external posting
// store. It is an immutable input to the matching engine.
type JobDescriptor struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Requirements   string   `json:"requirements"`
	RequiredSkills []string `json:"required_skills"`
}
