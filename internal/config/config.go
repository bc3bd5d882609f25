package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/atmolab/internal/altimetry"
	"github.com/san-kum/atmolab/internal/atmos"
	"github.com/san-kum/atmolab/internal/profile"
	"github.com/san-kum/atmolab/internal/state"
)

const (
	DefaultLapsePolicy = "auto"
	DefaultAltimeter   = "qnh"
	DefaultTemperature = 15.0
	DefaultPressure    = 1013.0
	DefaultPreset      = "default"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	LapsePolicy string                `yaml:"lapse_policy"`
	Altimeter   string                `yaml:"altimeter"`
	MaxAltitude float64               `yaml:"max_altitude"`
	Reference   ReferenceConfig       `yaml:"reference"`
	Initial     InitialConfig         `yaml:"initial"`
	Updraft     profile.UpdraftConfig `yaml:"updraft"`
	Altimetry   altimetry.Conditions  `yaml:"altimetry"`
	Levels      []profile.Level       `yaml:"levels"`
}

type ReferenceConfig struct {
	GroundTemperature float64 `yaml:"ground_temperature"`
	MSLPressure       float64 `yaml:"msl_pressure"`
}

type InitialConfig struct {
	Temperature      float64 `yaml:"temperature"`
	Pressure         float64 `yaml:"pressure"`
	SpecificHumidity float64 `yaml:"specific_humidity"`
}

func DefaultConfig() *Config {
	return &Config{
		LapsePolicy: DefaultLapsePolicy,
		Altimeter:   DefaultAltimeter,
		MaxAltitude: profile.DefaultMaxAltitude,
		Reference: ReferenceConfig{
			GroundTemperature: atmos.T0,
			MSLPressure:       atmos.P0,
		},
		Initial: InitialConfig{
			Temperature: DefaultTemperature,
			Pressure:    DefaultPressure,
		},
		Updraft:   profile.DefaultUpdraftConfig(),
		Altimetry: altimetry.StandardConditions(),
		Levels:    append([]profile.Level(nil), Presets[DefaultPreset].Levels...),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks value ranges. Sounding levels are checked when the
// sounding is derived.
func (c *Config) Validate() error {
	if _, err := state.ParseLapsePolicy(c.LapsePolicy); err != nil {
		return err
	}
	if _, err := state.ParseAltimeterMode(c.Altimeter); err != nil {
		return err
	}
	switch {
	case c.MaxAltitude <= 0 || c.MaxAltitude > atmos.TropopauseAltitude:
		return fmt.Errorf("%w: max_altitude %.0f m", ErrInvalid, c.MaxAltitude)
	case c.Reference.MSLPressure <= 0:
		return fmt.Errorf("%w: reference.msl_pressure %.2f hPa", ErrInvalid, c.Reference.MSLPressure)
	case c.Initial.Pressure <= 0:
		return fmt.Errorf("%w: initial.pressure %.2f hPa", ErrInvalid, c.Initial.Pressure)
	case c.Initial.SpecificHumidity < 0:
		return fmt.Errorf("%w: initial.specific_humidity %.2f g/kg", ErrInvalid, c.Initial.SpecificHumidity)
	case c.Updraft.Steps < 2:
		return fmt.Errorf("%w: updraft.steps %d", ErrInvalid, c.Updraft.Steps)
	case c.Altimetry.MSLPressure <= 0:
		return fmt.Errorf("%w: altimetry.msl_pressure %.2f hPa", ErrInvalid, c.Altimetry.MSLPressure)
	case c.Altimetry.LapseRate < 0:
		return fmt.Errorf("%w: altimetry.lapse_rate %.2f °C/100m", ErrInvalid, c.Altimetry.LapseRate)
	}
	return nil
}

// Propagator builds the state propagator described by the config.
func (c *Config) Propagator() (*state.Propagator, error) {
	lapse, err := state.ParseLapsePolicy(c.LapsePolicy)
	if err != nil {
		return nil, err
	}
	mode, err := state.ParseAltimeterMode(c.Altimeter)
	if err != nil {
		return nil, err
	}
	return state.NewPropagator(lapse, state.Reference{
		GroundTemperature: c.Reference.GroundTemperature,
		MSLPressure:       c.Reference.MSLPressure,
		Mode:              mode,
	}), nil
}

// InitialState resolves the configured starting air.
func (c *Config) InitialState(p *state.Propagator) state.State {
	return p.New(c.Initial.Temperature, c.Initial.Pressure, c.Initial.SpecificHumidity)
}

func (c *Config) Sounding() (*profile.Sounding, error) {
	return profile.Derive(c.Levels, c.MaxAltitude)
}

// UsePreset replaces the sounding and updraft with a named preset.
func (c *Config) UsePreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	c.Levels = append([]profile.Level(nil), p.Levels...)
	c.Updraft = p.Updraft
	return nil
}
