package domain

import "strings"

// QuestionType selects the input control rendered for a survey question.
type QuestionType string

const (
	QuestionText     QuestionType = "text"
	QuestionTextarea QuestionType = "textarea"
	QuestionSelect   QuestionType = "select"
)

// SurveyQuestion describes one survey field and the sheet column its
// answer lands in (1-based, A=1).
type SurveyQuestion struct {
	ID          string       `json:"id" yaml:"id"`
	Label       string       `json:"label" yaml:"label"`
	Type        QuestionType `json:"type" yaml:"type"`
	Column      int          `json:"column" yaml:"column"`
	Placeholder string       `json:"placeholder,omitempty" yaml:"placeholder"`
	Options     []string     `json:"options,omitempty" yaml:"options"`
}

// SurveyAnswers maps question IDs to single free-text or enumerated
// values. Unanswered questions are absent keys, never empty strings.
type SurveyAnswers map[string]string

// Pruned returns a copy without blank values, so partial submissions carry
// only the questions the guest actually answered.
func (a SurveyAnswers) Pruned() SurveyAnswers {
	out := make(SurveyAnswers, len(a))
	for id, value := range a {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		out[id] = value
	}
	return out
}
