package types

// LearningResource represents one remediation resource for a missing skill.
type LearningResource struct {
	Skill    string `json:"skill"`
	Level    string `json:"level"`
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Duration string `json:"duration"`
}

// Question types emitted by the interview question generator.
const (
	QuestionTechnical  = "technical"
	QuestionBehavioral = "behavioral"
)

// Question represents a single generated interview question.
type Question struct {
	Type     string `json:"type"`
	Skill    string `json:"skill,omitempty"`
	Question string `json:"question"`
}
