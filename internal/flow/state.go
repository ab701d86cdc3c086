package flow

import "lifepath/internal/catalog"

// State is the session progress triple: priorities, answers, and the
// current step index. It is the unit of persistence and resumption.
type State struct {
	Priorities *catalog.Priorities `json:"priorities"`
	Answers    Answers             `json:"answers"`
	Step       int                 `json:"step"`
}

// NewState returns a fresh, empty session state.
func NewState() State {
	return State{Answers: NewAnswers()}
}

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	out := State{
		Answers: s.Answers.Clone(),
		Step:    s.Step,
	}
	if s.Priorities != nil {
		p := *s.Priorities
		p.Maintenance = append([]catalog.Pillar(nil), s.Priorities.Maintenance...)
		out.Priorities = &p
	}
	return out
}

// Action is a state transition request handled by Apply.
type Action interface {
	isAction()
}

// AnswerQuestion records an answer. The active flow is derived, so a
// rebuild is implicit on the next Build call.
type AnswerQuestion struct {
	QuestionID string
	Value      Value
}

// SetPriorities replaces the pillar priorities.
type SetPriorities struct {
	Priorities catalog.Priorities
}

// Next advances to the following question, clamped to one past the final
// flow index to mark completion.
type Next struct{}

// Previous steps back, clamped to the first question.
type Previous struct{}

// Restart moves back to the first question but keeps all answers, matching
// the retake behaviour of the consumer app.
type Restart struct{}

// Reset wipes the whole session: answers, priorities, and position.
type Reset struct{}

func (AnswerQuestion) isAction() {}
func (SetPriorities) isAction()  {}
func (Next) isAction()           {}
func (Previous) isAction()       {}
func (Restart) isAction()        {}
func (Reset) isAction()          {}

// Apply computes the successor state for an action. The input state is
// never mutated, which keeps the engine testable without a UI harness and
// makes every transition replayable.
func Apply(c *catalog.Catalog, s State, action Action) State {
	next := s.Clone()

	switch a := action.(type) {
	case AnswerQuestion:
		next.Answers.Set(a.QuestionID, a.Value)
	case SetPriorities:
		p := a.Priorities
		next.Priorities = &p
	case Next:
		limit := len(Build(c, next.Answers))
		if next.Step < limit {
			next.Step++
		}
	case Previous:
		if next.Step > 0 {
			next.Step--
		}
	case Restart:
		next.Step = 0
	case Reset:
		next = NewState()
	}

	return next
}

// Current returns the question at the state's step in the active flow.
// The second return is false once the step has moved past the end, which
// is how a completed flow presents.
func Current(c *catalog.Catalog, s State) (catalog.Question, bool) {
	active := Build(c, s.Answers)
	if s.Step < 0 || s.Step >= len(active) {
		return catalog.Question{}, false
	}
	return active[s.Step], true
}

// Completed reports whether the step index has passed the final question.
func Completed(c *catalog.Catalog, s State) bool {
	return s.Step >= len(Build(c, s.Answers))
}
