package catalog

import "strings"

// QuestionType describes the answer shape a question expects.
type QuestionType string

const (
	TypeText           QuestionType = "text"
	TypeNumber         QuestionType = "number"
	TypeSlider         QuestionType = "slider"
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeMultiSelect    QuestionType = "multi-select"
	TypeDate           QuestionType = "date"
)

// Numeric reports whether answers to this type are numbers.
func (t QuestionType) Numeric() bool {
	return t == TypeNumber || t == TypeSlider
}

// SliderLabels annotate the two ends of a slider question.
type SliderLabels struct {
	Min string `json:"min" yaml:"min"`
	Max string `json:"max" yaml:"max"`
}

// Question is a single immutable questionnaire entry. Questions are defined
// at load time and never created or destroyed while the service runs.
type Question struct {
	ID           string        `json:"id" yaml:"id"`
	Text         string        `json:"text" yaml:"text"`
	Type         QuestionType  `json:"type" yaml:"type"`
	Pillar       Pillar        `json:"pillar" yaml:"pillar"`
	Options      []string      `json:"options,omitempty" yaml:"options,omitempty"`
	Placeholder  string        `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	SliderLabels *SliderLabels `json:"sliderLabels,omitempty" yaml:"slider_labels,omitempty"`
	Optional     bool          `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// followUpSuffix marks questions that only enter the flow via a trigger rule.
const followUpSuffix = "_follow_up"

// FollowUp reports whether the question is a conditional follow-up rather
// than part of the base sequence.
func (q Question) FollowUp() bool {
	return strings.HasSuffix(q.ID, followUpSuffix)
}

// TriggerOp is the comparison a trigger rule applies to the trigger
// question's answer.
type TriggerOp string

const (
	OpEq  TriggerOp = "eq"  // answer equals Value
	OpIn  TriggerOp = "in"  // answer is one of Values
	OpLte TriggerOp = "lte" // numeric answer <= Threshold
	OpLt  TriggerOp = "lt"  // numeric answer < Threshold
)

// TriggerRule declares that FollowUpID is spliced into the active flow
// immediately after TriggerID whenever the condition holds. Rules are
// evaluated in declaration order; a follow-up already present is never
// inserted twice.
type TriggerRule struct {
	TriggerID  string    `json:"triggerId" yaml:"trigger_id"`
	FollowUpID string    `json:"followUpId" yaml:"follow_up_id"`
	Op         TriggerOp `json:"op" yaml:"op"`
	Value      string    `json:"value,omitempty" yaml:"value,omitempty"`
	Values     []string  `json:"values,omitempty" yaml:"values,omitempty"`
	Threshold  float64   `json:"threshold,omitempty" yaml:"threshold,omitempty"`
}
