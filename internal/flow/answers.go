package flow

// Answers maps question IDs to answer values. It is a pure value container:
// Set never validates, flow rebuilding and persistence are the composing
// layer's concern.
type Answers map[string]Value

// NewAnswers returns an empty answer store.
func NewAnswers() Answers {
	return Answers{}
}

// Get returns the answer for a question, or the Unanswered sentinel.
func (a Answers) Get(questionID string) Value {
	if a == nil {
		return Unanswered
	}
	v, ok := a[questionID]
	if !ok {
		return Unanswered
	}
	return v
}

// Has reports whether the question has a non-sentinel answer.
func (a Answers) Has(questionID string) bool {
	return a.Get(questionID).Answered()
}

// Set overwrites or inserts an answer. Setting the Unanswered sentinel
// removes the entry.
func (a Answers) Set(questionID string, v Value) {
	if !v.Answered() {
		delete(a, questionID)
		return
	}
	a[questionID] = v
}

// Clone returns an independent copy so reducer transitions never mutate
// the previous state.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for id, v := range a {
		out[id] = v
	}
	return out
}

// Len returns the number of stored answers, stale follow-up answers
// included.
func (a Answers) Len() int {
	return len(a)
}
