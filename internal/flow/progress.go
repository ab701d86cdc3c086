package flow

import "lifepath/internal/catalog"

// Progress summarises completion of the active flow. Percentages are raw
// floating-point values; rounding belongs to the presentation boundary.
type Progress struct {
	Total     int                        `json:"total"`
	Answered  int                        `json:"answered"`
	Overall   float64                    `json:"overallPercentage"`
	PerPillar map[catalog.Pillar]float64 `json:"pillarPercentages"`
}

// ComputeProgress derives completion percentages from an active flow and
// an answer snapshot. It is pure and total: empty flows and pillars with
// no questions report 0, never NaN. The overall percentage covers the
// whole flow, Basics included; per-pillar percentages only exist for the
// four scored pillars.
func ComputeProgress(active []catalog.Question, answers Answers) Progress {
	p := Progress{
		Total:     len(active),
		PerPillar: make(map[catalog.Pillar]float64, len(catalog.ScoredPillars())),
	}

	totals := map[catalog.Pillar]int{}
	answered := map[catalog.Pillar]int{}
	for _, q := range active {
		if answers.Has(q.ID) {
			p.Answered++
		}
		if !q.Pillar.Scored() {
			continue
		}
		totals[q.Pillar]++
		if answers.Has(q.ID) {
			answered[q.Pillar]++
		}
	}

	if p.Total > 0 {
		p.Overall = float64(p.Answered) / float64(p.Total) * 100
	}
	for _, pillar := range catalog.ScoredPillars() {
		if totals[pillar] == 0 {
			p.PerPillar[pillar] = 0
			continue
		}
		p.PerPillar[pillar] = float64(answered[pillar]) / float64(totals[pillar]) * 100
	}
	return p
}
