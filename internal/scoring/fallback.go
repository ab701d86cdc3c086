package scoring

import (
	"fmt"
	"math"
	"strings"

	"lifepath/internal/catalog"
)

// defaultScore is reported for a pillar with no answered cards.
const defaultScore = 50

// Fallback computes per-pillar scores locally: the rounded percentage of
// answered cards in each category that were kept. It runs whenever the
// remote scorer is unavailable or returns garbage.
func Fallback(decisions map[int]Decision, cards []catalog.PulseCheckCard) Results {
	results := Results{
		Scores:   make(map[catalog.Pillar]int, len(catalog.ScoredPillars())),
		Insights: make(map[catalog.Pillar]string, len(catalog.ScoredPillars())),
		Fallback: true,
	}

	for _, pillar := range catalog.ScoredPillars() {
		answered, kept := 0, 0
		for _, card := range cards {
			if card.Category != pillar {
				continue
			}
			decision, ok := decisions[card.ID]
			if !ok {
				continue
			}
			answered++
			if decision == DecisionKeep {
				kept++
			}
		}

		if answered == 0 {
			results.Scores[pillar] = defaultScore
		} else {
			results.Scores[pillar] = int(math.Round(float64(kept) / float64(answered) * 100))
		}
		results.Insights[pillar] = fmt.Sprintf(
			"Based on your responses, your %s score reflects your current focus in this area.",
			strings.ToLower(string(pillar)),
		)
	}
	return results
}

// clampScore pins a scorer-provided value into [0,100].
func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
