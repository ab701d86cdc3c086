package flow

import "lifepath/internal/catalog"

// Build derives the active flow: a copy of the catalog's base sequence with
// every triggered follow-up spliced in immediately after its trigger
// question. The flow is recomputed from scratch on every call, never
// patched, so the result is deterministic for a given answer snapshot and
// follow-ups vanish as soon as their trigger condition stops holding.
func Build(c *catalog.Catalog, answers Answers) []catalog.Question {
	active := c.Base()

	for _, rule := range c.Rules() {
		if !Satisfied(rule, answers.Get(rule.TriggerID)) {
			continue
		}
		if indexOf(active, rule.FollowUpID) >= 0 {
			continue
		}
		followUp, ok := c.Question(rule.FollowUpID)
		if !ok {
			continue
		}
		at := indexOf(active, rule.TriggerID)
		if at < 0 {
			// Trigger not in the current sequence: the rule is simply
			// unsatisfied, not an error.
			continue
		}
		active = append(active, catalog.Question{})
		copy(active[at+2:], active[at+1:])
		active[at+1] = followUp
	}

	return active
}

// Satisfied evaluates one trigger rule against an answer value. An
// unanswered trigger never satisfies a rule.
func Satisfied(rule catalog.TriggerRule, answer Value) bool {
	if !answer.Answered() {
		return false
	}
	switch rule.Op {
	case catalog.OpEq:
		return answer.Equals(rule.Value)
	case catalog.OpIn:
		for _, literal := range rule.Values {
			if answer.Equals(literal) {
				return true
			}
		}
		return false
	case catalog.OpLte:
		n, ok := answer.AsNumber()
		return ok && n <= rule.Threshold
	case catalog.OpLt:
		n, ok := answer.AsNumber()
		return ok && n < rule.Threshold
	default:
		return false
	}
}

func indexOf(questions []catalog.Question, id string) int {
	for i, q := range questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}
