package catalog

import "fmt"

// Pillar is one of the four scored life domains, plus the neutral Basics
// category used for intake questions that never count toward pillar scores.
type Pillar string

const (
	PillarBasics      Pillar = "Basics"
	PillarCareer      Pillar = "Career"
	PillarFinances    Pillar = "Finances"
	PillarHealth      Pillar = "Health"
	PillarConnections Pillar = "Connections"
)

// ScoredPillars returns the four scored pillars in their fixed display order.
func ScoredPillars() []Pillar {
	return []Pillar{PillarCareer, PillarFinances, PillarHealth, PillarConnections}
}

// Valid reports whether p is a known pillar, Basics included.
func (p Pillar) Valid() bool {
	switch p {
	case PillarBasics, PillarCareer, PillarFinances, PillarHealth, PillarConnections:
		return true
	default:
		return false
	}
}

// Scored reports whether answers under p contribute to pillar percentages.
func (p Pillar) Scored() bool {
	return p.Valid() && p != PillarBasics
}

// ParsePillar converts a string to a Pillar, accepting the "Financials"
// alias used by older clients.
func ParsePillar(s string) (Pillar, error) {
	switch s {
	case string(PillarBasics):
		return PillarBasics, nil
	case string(PillarCareer):
		return PillarCareer, nil
	case string(PillarFinances), "Financials":
		return PillarFinances, nil
	case string(PillarHealth):
		return PillarHealth, nil
	case string(PillarConnections):
		return PillarConnections, nil
	default:
		return "", fmt.Errorf("unknown pillar: %q", s)
	}
}
