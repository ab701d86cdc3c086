// Package scoring turns pulse-check card decisions into per-pillar scores.
// The primary path asks a remote AI scoring service; every failure mode
// falls back to a local percentage computation so the results view always
// renders.
package scoring

import (
	"lifepath/internal/catalog"
)

// Decision is a swipe outcome for one card.
type Decision string

const (
	DecisionKeep Decision = "keep"
	DecisionPass Decision = "pass"
)

// CardResult pairs a decision with the card's metadata, which is what the
// remote scorer receives.
type CardResult struct {
	CardID   int      `json:"cardId"`
	Decision Decision `json:"decision"`
	Card     CardData `json:"card_data"`
}

// CardData is the card metadata the scorer sees.
type CardData struct {
	Category catalog.Pillar `json:"category"`
	Tone     string         `json:"tone"`
	Text     string         `json:"text"`
}

// Results holds per-pillar scores in [0,100] and one short insight line
// per pillar.
type Results struct {
	Scores   map[catalog.Pillar]int    `json:"scores"`
	Insights map[catalog.Pillar]string `json:"insights"`
	// Fallback marks results computed locally after a scorer failure.
	Fallback bool `json:"fallback,omitempty"`
}

// BuildResults assembles the scorer payload from raw decisions and the
// card deck. Decisions referencing unknown cards are dropped.
func BuildResults(decisions map[int]Decision, cards []catalog.PulseCheckCard) []CardResult {
	out := make([]CardResult, 0, len(decisions))
	for _, card := range cards {
		decision, ok := decisions[card.ID]
		if !ok {
			continue
		}
		out = append(out, CardResult{
			CardID:   card.ID,
			Decision: decision,
			Card: CardData{
				Category: card.Category,
				Tone:     card.Tone,
				Text:     card.Text,
			},
		})
	}
	return out
}
