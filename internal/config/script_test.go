package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/atmolab/internal/state"
)

const climb = `name: climb
description: lift moist air to cloud base
edits:
  - field: rh
    value: 80
  - field: altitude
    value: 1500
  - field: temperature
    value: 5
`

func TestLoadScriptAndRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "climb.yaml")
	if err := os.WriteFile(path, []byte(climb), 0644); err != nil {
		t.Fatal(err)
	}
	script, err := LoadScript(path)
	if err != nil {
		t.Fatal(err)
	}
	if script.Name != "climb" || len(script.Edits) != 3 {
		t.Fatalf("unexpected script %+v", script)
	}

	cfg := DefaultConfig()
	p, err := cfg.Propagator()
	if err != nil {
		t.Fatal(err)
	}
	sess := state.NewSession(p, cfg.InitialState(p), nil)
	readouts, err := script.Run(sess)
	if err != nil {
		t.Fatal(err)
	}
	if len(readouts) != 3 {
		t.Fatalf("expected 3 readouts, got %d", len(readouts))
	}
	if readouts[1].Altitude != 1500 {
		t.Errorf("expected altitude 1500, got %f", readouts[1].Altitude)
	}
	if readouts[1].RelativeHumidity <= 80 {
		t.Errorf("lifted air should be more humid, got %f", readouts[1].RelativeHumidity)
	}
	if !readouts[2].Saturated {
		t.Error("cooling to 5°C at 1500 m should saturate")
	}
}

func TestScriptRejectsUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "edits:\n  - field: wind\n    value: 3\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScript(path); !errors.Is(err, state.ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}
