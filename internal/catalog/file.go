package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileCatalog is the YAML shape of an external catalog file.
type fileCatalog struct {
	Questions []Question        `yaml:"questions"`
	Rules     []TriggerRule     `yaml:"rules"`
	Future    []FutureQuestions `yaml:"future_questions"`
	Cards     []PulseCheckCard  `yaml:"pulse_check_cards"`
}

// LoadFile reads a catalog from a YAML file and validates it. Any problem
// is returned as an error so the caller can refuse to start.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	c, err := New(fc.Questions, fc.Rules, fc.Future, fc.Cards)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}
