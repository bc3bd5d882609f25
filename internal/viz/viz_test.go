package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/atmolab/internal/altimetry"
	"github.com/san-kum/atmolab/internal/profile"
	"github.com/san-kum/atmolab/internal/state"
)

func TestTemperatureColor(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want lipgloss.Color
	}{
		{"coldest is blue", 0, "#0000c0"},
		{"quarter is cyan", 10, "#00c0c0"},
		{"half is green", 20, "#00c000"},
		{"three quarters is yellow", 30, "#c0c000"},
		{"hottest is red", 40, "#c00000"},
		{"clamped below", -15, "#0000c0"},
		{"clamped above", 90, "#c00000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TemperatureColor(0, 40, tt.t); got != tt.want {
				t.Errorf("TemperatureColor(0, 40, %v) = %s, want %s", tt.t, got, tt.want)
			}
		})
	}
}

func TestTemperatureRGBContinuous(t *testing.T) {
	pr, pg, pb := temperatureRGB(-10, 30, -10)
	for temp := -10.0; temp <= 30; temp += 0.1 {
		r, g, b := temperatureRGB(-10, 30, temp)
		if math.Abs(r-pr) > 0.02 || math.Abs(g-pg) > 0.02 || math.Abs(b-pb) > 0.02 {
			t.Fatalf("jump at %.1f: (%.2f %.2f %.2f) -> (%.2f %.2f %.2f)", temp, pr, pg, pb, r, g, b)
		}
		pr, pg, pb = r, g, b
	}
}

func TestTemperatureRangeIncludesParcel(t *testing.T) {
	levels := []profile.DerivedLevel{
		{Level: profile.Level{Temperature: 20}},
		{Level: profile.Level{Temperature: 25}},
		{Level: profile.Level{Temperature: -3}},
	}
	lo, hi := TemperatureRange(levels, 0.5)
	if lo != -3 || hi != 25 {
		t.Errorf("got [%v, %v], want [-3, 25]", lo, hi)
	}
	_, hi = TemperatureRange(levels, 8)
	if hi != 28 {
		t.Errorf("parcel should raise max to 28, got %v", hi)
	}
}

func TestCanvas(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0, "")
	c.Set(1, 3, "")
	c.Set(-1, 0, "")
	c.Set(100, 100, "")
	if got := c.cells[0][0]; got != brailleBlank|0x1|0x80 {
		t.Errorf("unexpected cell %U", got)
	}

	c.Clear()
	c.DrawLine(0, 0, 7, 7, "")
	rows := c.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for i := 0; i < 4; i++ {
		if c.cells[i/2][i] == brailleBlank {
			t.Errorf("diagonal missing in cell %d", i)
		}
	}
}

func TestFormatField(t *testing.T) {
	tests := []struct {
		f    state.Field
		v    float64
		want string
	}{
		{state.Temperature, 15.04, "15.0 °C"},
		{state.Altitude, 1234.6, "1235 m"},
		{state.SpecificHumidity, 8.126, "8.13 g/kg"},
		{state.DewPoint, math.Inf(-1), "-inf °C"},
	}
	for _, tt := range tests {
		if got := FormatField(tt.f, tt.v); got != tt.want {
			t.Errorf("FormatField(%s, %v) = %q, want %q", tt.f, tt.v, got, tt.want)
		}
	}
}

func TestPanels(t *testing.T) {
	prop := state.NewPropagator(state.LapseDry, state.StandardReference())
	s := prop.FromRelativeHumidity(prop.New(15, 1013, 0), 101)
	r := state.NewReadout(s)

	out := ReadoutPanel(r)
	for _, want := range []string{"Relative humidity", "Air density", "saturated"} {
		if !strings.Contains(out, want) {
			t.Errorf("readout panel missing %q", want)
		}
	}

	m := state.Capture(prop.New(10, 1013, 0))
	if out := MarkerPanel(m, r); !strings.Contains(out, "Marker") {
		t.Error("marker panel missing title")
	}

	if rows := FieldRows(s, 4); !strings.Contains(rows, "▸ Temperature") {
		t.Error("cursor not rendered on temperature")
	}
}

func TestProfileRendering(t *testing.T) {
	s, err := profile.Derive([]profile.Level{
		{Altitude: 0, Temperature: 25, RelativeHumidity: 50},
		{Altitude: 1000, Temperature: 15, RelativeHumidity: 30},
		{Altitude: 3000, Temperature: 0, RelativeHumidity: 10},
	}, profile.DefaultMaxAltitude)
	if err != nil {
		t.Fatal(err)
	}
	up, err := s.Updraft(profile.DefaultUpdraftConfig())
	if err != nil {
		t.Fatal(err)
	}

	if out := SoundingTable(s.Levels(), 0.5); strings.Count(out, "\n") < 4 {
		t.Errorf("sounding table too short:\n%s", out)
	}
	if out := UpdraftSummary(up); !strings.Contains(out, "Thermal top") {
		t.Error("updraft summary missing top")
	}
	if out := UpdraftChart(s, up, 50, 40, 8); !strings.Contains(out, "parcel") {
		t.Error("chart missing legend")
	}
	if out := ExcessChart(up, 40, 5); out == "" {
		t.Error("empty excess chart")
	}
	if out := SoundingDiagram(s, up, 30, 10); strings.Count(out, "\n") != 10 {
		t.Errorf("diagram should have 10 rows and an axis line:\n%s", out)
	}
	if SoundingDiagram(s, profile.Updraft{}, 30, 10) != "" {
		t.Error("diagram of an empty updraft should be empty")
	}
}

func TestAltimetryPanels(t *testing.T) {
	c := altimetry.StandardConditions()
	r, err := c.AtFlightLevel(100)
	if err != nil {
		t.Fatal(err)
	}
	out := FlightLevelPanel(r, c)
	for _, want := range []string{"FL 100", "bad winter", "heat wave", "True altitude"} {
		if !strings.Contains(out, want) {
			t.Errorf("flight level panel missing %q", want)
		}
	}
	if out := ErrorTablePanel(altimetry.ErrorTables[0]); !strings.Contains(out, "Brest") {
		t.Error("error table missing station")
	}
}

func TestThemes(t *testing.T) {
	defer SetTheme("sky")
	SetTheme("night")
	if CurrentTheme.Name != "night" {
		t.Errorf("expected night, got %s", CurrentTheme.Name)
	}
	if GetTheme("nonexistent").Name != "sky" {
		t.Error("unknown theme should fall back to sky")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names mismatch")
	}
}
