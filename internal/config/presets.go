package config

import (
	"errors"
	"sort"

	"github.com/san-kum/atmolab/internal/profile"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

// Preset is a named sounding.
type Preset struct {
	Description string
	Levels      []profile.Level
	Updraft     profile.UpdraftConfig
}

var Presets = map[string]*Preset{
	"default": {
		Description: "summer afternoon, dry aloft",
		Levels: []profile.Level{
			{Altitude: 0, Temperature: 25, RelativeHumidity: 50},
			{Altitude: 500, Temperature: 18, RelativeHumidity: 40},
			{Altitude: 1000, Temperature: 15, RelativeHumidity: 30},
			{Altitude: 1500, Temperature: 11, RelativeHumidity: 20},
			{Altitude: 2250, Temperature: 9, RelativeHumidity: 20},
			{Altitude: 3000, Temperature: 0, RelativeHumidity: 10},
		},
		Updraft: profile.UpdraftConfig{DeltaT: 0.5, Steps: profile.DefaultUpdraftSteps},
	},
	"convective": {
		Description: "moist unstable air, cumulus expected",
		Levels: []profile.Level{
			{Altitude: 0, Temperature: 28, RelativeHumidity: 65},
			{Altitude: 750, Temperature: 20, RelativeHumidity: 70},
			{Altitude: 1500, Temperature: 12, RelativeHumidity: 75},
			{Altitude: 2250, Temperature: 5, RelativeHumidity: 60},
			{Altitude: 3000, Temperature: -2, RelativeHumidity: 40},
		},
		Updraft: profile.UpdraftConfig{DeltaT: 1.5, Steps: profile.DefaultUpdraftSteps},
	},
	"stable": {
		Description: "morning inversion",
		Levels: []profile.Level{
			{Altitude: 0, Temperature: 12, RelativeHumidity: 80},
			{Altitude: 300, Temperature: 15, RelativeHumidity: 50},
			{Altitude: 1500, Temperature: 10, RelativeHumidity: 40},
			{Altitude: 3000, Temperature: 2, RelativeHumidity: 30},
		},
		Updraft: profile.UpdraftConfig{DeltaT: 0.5, Steps: profile.DefaultUpdraftSteps},
	},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
