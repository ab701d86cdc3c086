package catalog

import "fmt"

// FutureQuestions holds the future-self questionnaire variants for one
// pillar: the deep-dive set asked for focus pillars and the single
// maintenance baseline question asked for the rest.
type FutureQuestions struct {
	Pillar      Pillar   `json:"pillar" yaml:"pillar"`
	DeepDive    []string `json:"deepDive" yaml:"deep_dive"`
	Maintenance string   `json:"maintenance" yaml:"maintenance"`
}

// PulseCheckCard is one swipeable statement in the pulse-check deck.
type PulseCheckCard struct {
	ID       int    `json:"id" yaml:"id"`
	Category Pillar `json:"category" yaml:"category"`
	Tone     string `json:"tone" yaml:"tone"` // positive or negative
	Text     string `json:"text" yaml:"text"`
}

// Catalog is the static question configuration: the ordered question list,
// the trigger rules for conditional follow-ups, the future-self question
// variants, and the pulse-check card deck. A Catalog is read-only once
// validated.
type Catalog struct {
	questions []Question
	rules     []TriggerRule
	future    map[Pillar]FutureQuestions
	cards     []PulseCheckCard

	byID map[string]Question
}

// New assembles a catalog and validates it. A malformed catalog is a
// configuration error: callers are expected to fail fast at startup.
func New(questions []Question, rules []TriggerRule, future []FutureQuestions, cards []PulseCheckCard) (*Catalog, error) {
	c := &Catalog{
		questions: questions,
		rules:     rules,
		future:    make(map[Pillar]FutureQuestions, len(future)),
		cards:     cards,
		byID:      make(map[string]Question, len(questions)),
	}
	for _, fq := range future {
		c.future[fq.Pillar] = fq
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Default returns the built-in catalog shipped with the service.
func Default() *Catalog {
	c, err := New(defaultQuestions(), defaultTriggerRules(), defaultFutureQuestions(), defaultPulseCheckCards())
	if err != nil {
		// The built-in data is covered by tests; reaching this is a bug.
		panic(fmt.Sprintf("catalog: built-in catalog invalid: %v", err))
	}
	return c
}

func (c *Catalog) validate() error {
	for _, q := range c.questions {
		if q.ID == "" {
			return fmt.Errorf("catalog: question with empty id")
		}
		if _, dup := c.byID[q.ID]; dup {
			return fmt.Errorf("catalog: duplicate question id %q", q.ID)
		}
		if !q.Pillar.Valid() {
			return fmt.Errorf("catalog: question %q has unknown pillar %q", q.ID, q.Pillar)
		}
		switch q.Type {
		case TypeText, TypeNumber, TypeSlider, TypeMultipleChoice, TypeMultiSelect, TypeDate:
		default:
			return fmt.Errorf("catalog: question %q has unknown type %q", q.ID, q.Type)
		}
		if (q.Type == TypeMultipleChoice || q.Type == TypeMultiSelect) && len(q.Options) == 0 {
			return fmt.Errorf("catalog: choice question %q has no options", q.ID)
		}
		c.byID[q.ID] = q
	}

	for i, rule := range c.rules {
		trigger, ok := c.byID[rule.TriggerID]
		if !ok {
			return fmt.Errorf("catalog: rule %d references unknown trigger question %q", i, rule.TriggerID)
		}
		followUp, ok := c.byID[rule.FollowUpID]
		if !ok {
			return fmt.Errorf("catalog: rule %d references unknown follow-up question %q", i, rule.FollowUpID)
		}
		if rule.TriggerID == rule.FollowUpID {
			return fmt.Errorf("catalog: rule %d: question %q triggers itself", i, rule.TriggerID)
		}
		if !followUp.FollowUp() {
			return fmt.Errorf("catalog: rule %d: follow-up %q is part of the base sequence", i, rule.FollowUpID)
		}
		if trigger.FollowUp() {
			return fmt.Errorf("catalog: rule %d: trigger %q is itself a follow-up", i, rule.TriggerID)
		}
		switch rule.Op {
		case OpEq:
			if rule.Value == "" {
				return fmt.Errorf("catalog: rule %d (%s): eq rule has no value", i, rule.FollowUpID)
			}
		case OpIn:
			if len(rule.Values) == 0 {
				return fmt.Errorf("catalog: rule %d (%s): in rule has no values", i, rule.FollowUpID)
			}
		case OpLte, OpLt:
			if !trigger.Type.Numeric() {
				return fmt.Errorf("catalog: rule %d (%s): threshold rule on non-numeric question %q", i, rule.FollowUpID, rule.TriggerID)
			}
		default:
			return fmt.Errorf("catalog: rule %d (%s): unknown op %q", i, rule.FollowUpID, rule.Op)
		}
	}

	for pillar, fq := range c.future {
		if !pillar.Scored() {
			return fmt.Errorf("catalog: future questions for non-scored pillar %q", pillar)
		}
		if len(fq.DeepDive) == 0 || fq.Maintenance == "" {
			return fmt.Errorf("catalog: future questions for %q incomplete", pillar)
		}
	}

	cardIDs := map[int]bool{}
	for _, card := range c.cards {
		if cardIDs[card.ID] {
			return fmt.Errorf("catalog: duplicate pulse-check card id %d", card.ID)
		}
		cardIDs[card.ID] = true
		if !card.Category.Scored() {
			return fmt.Errorf("catalog: pulse-check card %d has non-scored category %q", card.ID, card.Category)
		}
		if card.Tone != "positive" && card.Tone != "negative" {
			return fmt.Errorf("catalog: pulse-check card %d has unknown tone %q", card.ID, card.Tone)
		}
	}
	return nil
}

// Questions returns the full ordered question list, follow-ups included.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// Base returns the ordered base sequence: every question that is not a
// conditional follow-up. This is the flow every fresh session starts from.
func (c *Catalog) Base() []Question {
	out := make([]Question, 0, len(c.questions))
	for _, q := range c.questions {
		if !q.FollowUp() {
			out = append(out, q)
		}
	}
	return out
}

// ByPillar returns the ordered questions belonging to one pillar,
// follow-ups included.
func (c *Catalog) ByPillar(p Pillar) []Question {
	var out []Question
	for _, q := range c.questions {
		if q.Pillar == p {
			out = append(out, q)
		}
	}
	return out
}

// Question looks up a question by id.
func (c *Catalog) Question(id string) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Rules returns the trigger rules in declaration order.
func (c *Catalog) Rules() []TriggerRule {
	out := make([]TriggerRule, len(c.rules))
	copy(out, c.rules)
	return out
}

// DeepDive returns the deep-dive future-self questions for a pillar.
func (c *Catalog) DeepDive(p Pillar) []string {
	fq, ok := c.future[p]
	if !ok {
		return nil
	}
	out := make([]string, len(fq.DeepDive))
	copy(out, fq.DeepDive)
	return out
}

// Maintenance returns the maintenance baseline question for a pillar.
func (c *Catalog) Maintenance(p Pillar) string {
	return c.future[p].Maintenance
}

// Cards returns the pulse-check deck in catalog order.
func (c *Catalog) Cards() []PulseCheckCard {
	out := make([]PulseCheckCard, len(c.cards))
	copy(out, c.cards)
	return out
}
