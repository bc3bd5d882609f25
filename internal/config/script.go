package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/atmolab/internal/state"
)

// Script is an ordered list of edits replayed against a session.
type Script struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Edits       []ScriptEdit `yaml:"edits"`
}

// ScriptEdit sets one field. Field accepts the same names as ParseField.
type ScriptEdit struct {
	Field string  `yaml:"field"`
	Value float64 `yaml:"value"`
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, err
	}
	if _, err := script.Parse(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &script, nil
}

// Parse resolves field names.
func (s *Script) Parse() ([]state.Edit, error) {
	edits := make([]state.Edit, 0, len(s.Edits))
	for i, e := range s.Edits {
		f, err := state.ParseField(e.Field)
		if err != nil {
			return nil, fmt.Errorf("edit %d: %w", i+1, err)
		}
		edits = append(edits, state.Edit{Field: f, Value: e.Value})
	}
	return edits, nil
}

// Run applies every edit in order and returns the readout after each. It
// stops at the first rejected edit.
func (s *Script) Run(sess *state.Session) ([]state.Readout, error) {
	edits, err := s.Parse()
	if err != nil {
		return nil, err
	}
	readouts := make([]state.Readout, 0, len(edits))
	for i, e := range edits {
		if _, err := sess.Apply(e); err != nil {
			return readouts, fmt.Errorf("edit %d (%s): %w", i+1, e, err)
		}
		readouts = append(readouts, sess.Readout())
	}
	return readouts, nil
}
