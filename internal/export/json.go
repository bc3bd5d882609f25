package export

import (
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/atmolab/internal/altimetry"
	"github.com/san-kum/atmolab/internal/profile"
	"github.com/san-kum/atmolab/internal/state"
)

// Number is a float that encodes to JSON null when it is not finite, as
// for the dew point of perfectly dry air.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

type ReadoutData struct {
	Temperature        Number `json:"temperature"`
	Pressure           Number `json:"pressure"`
	Altitude           Number `json:"altitude"`
	SpecificHumidity   Number `json:"specific_humidity"`
	MixingRatio        Number `json:"mixing_ratio"`
	RelativeHumidity   Number `json:"relative_humidity"`
	DewPoint           Number `json:"dew_point"`
	AirDensity         Number `json:"air_density"`
	BoilingPoint       Number `json:"boiling_point"`
	FlightLevel        Number `json:"flight_level"`
	SaturationHumidity Number `json:"saturation_humidity"`
	Saturated          bool   `json:"saturated"`
}

func NewReadoutData(r state.Readout) ReadoutData {
	return ReadoutData{
		Temperature:        Number(r.Temperature),
		Pressure:           Number(r.Pressure),
		Altitude:           Number(r.Altitude),
		SpecificHumidity:   Number(r.SpecificHumidity),
		MixingRatio:        Number(r.MixingRatio),
		RelativeHumidity:   Number(r.RelativeHumidity),
		DewPoint:           Number(r.DewPoint),
		AirDensity:         Number(r.AirDensity),
		BoilingPoint:       Number(r.BoilingPoint),
		FlightLevel:        Number(r.FlightLevel),
		SaturationHumidity: Number(r.SaturationHumidity),
		Saturated:          r.Saturated,
	}
}

// SessionData is a replayed session: the edits and the readout after each.
type SessionData struct {
	LapsePolicy string        `json:"lapse_policy"`
	Altimeter   string        `json:"altimeter"`
	Initial     ReadoutData   `json:"initial"`
	Edits       []EditData    `json:"edits"`
	Readouts    []ReadoutData `json:"readouts"`
}

type EditData struct {
	Field string  `json:"field"`
	Value float64 `json:"value"`
}

func NewSessionData(p *state.Propagator, initial state.Readout, edits []state.Edit, readouts []state.Readout) SessionData {
	data := SessionData{
		LapsePolicy: p.Lapse.String(),
		Altimeter:   p.Reference.Mode.String(),
		Initial:     NewReadoutData(initial),
		Edits:       make([]EditData, len(edits)),
		Readouts:    make([]ReadoutData, len(readouts)),
	}
	for i, e := range edits {
		data.Edits[i] = EditData{Field: e.Field.String(), Value: e.Value}
	}
	for i, r := range readouts {
		data.Readouts[i] = NewReadoutData(r)
	}
	return data
}

type SoundingData struct {
	MaxAltitude float64                `json:"max_altitude"`
	Levels      []profile.DerivedLevel `json:"levels"`
	Info        []profile.DerivedLevel `json:"info,omitempty"`
	Updraft     profile.UpdraftConfig  `json:"updraft_config"`
	Parcel      []profile.ParcelLevel  `json:"parcel"`
	Ceiling     profile.Termination    `json:"ceiling"`
}

func NewSoundingData(s *profile.Sounding, cfg profile.UpdraftConfig, up profile.Updraft, info []profile.DerivedLevel) SoundingData {
	return SoundingData{
		MaxAltitude: s.MaxAltitude(),
		Levels:      s.Levels(),
		Info:        info,
		Updraft:     cfg,
		Parcel:      up.Levels,
		Ceiling:     up.Ceiling,
	}
}

type FlightLevelData struct {
	Conditions altimetry.Conditions `json:"conditions"`
	Readings   []altimetry.Reading  `json:"readings"`
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
