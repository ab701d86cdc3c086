package catalog

import "fmt"

// Priorities records how a user ranked the four scored pillars: one main
// focus, one secondary focus, and the rest on maintenance. The three groups
// must partition the scored pillars exactly.
type Priorities struct {
	MainFocus      Pillar   `json:"mainFocus" yaml:"main_focus"`
	SecondaryFocus Pillar   `json:"secondaryFocus" yaml:"secondary_focus"`
	Maintenance    []Pillar `json:"maintenance" yaml:"maintenance"`
}

// Validate checks the partition invariant: every scored pillar appears in
// exactly one group, and Basics appears nowhere.
func (p Priorities) Validate() error {
	seen := map[Pillar]string{}
	place := func(pillar Pillar, group string) error {
		if !pillar.Scored() {
			return fmt.Errorf("priorities %s: %q is not a scored pillar", group, pillar)
		}
		if prev, ok := seen[pillar]; ok {
			return fmt.Errorf("priorities: pillar %q assigned to both %s and %s", pillar, prev, group)
		}
		seen[pillar] = group
		return nil
	}

	if err := place(p.MainFocus, "main focus"); err != nil {
		return err
	}
	if err := place(p.SecondaryFocus, "secondary focus"); err != nil {
		return err
	}
	for _, pillar := range p.Maintenance {
		if err := place(pillar, "maintenance"); err != nil {
			return err
		}
	}

	if len(seen) != len(ScoredPillars()) {
		for _, pillar := range ScoredPillars() {
			if _, ok := seen[pillar]; !ok {
				return fmt.Errorf("priorities: pillar %q is not assigned to any group", pillar)
			}
		}
	}
	return nil
}
