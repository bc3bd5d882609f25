package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/atmolab/internal/altimetry"
	"github.com/san-kum/atmolab/internal/atmos"
	"github.com/san-kum/atmolab/internal/viz"
)

const (
	flightLevel = iota
	flightPressure
	flightMSLPressure
	flightMSLTemperature
	flightLapseRate
)

var flightInputs = []string{"Flight level", "Pressure", "MSL pressure", "MSL temperature", "Lapse rate"}

type flightPane struct {
	conditions altimetry.Conditions
	fl         float64
	pressure   float64
	reading    altimetry.Reading
	cursor     int
}

func newFlightPane(c altimetry.Conditions, fl float64) (flightPane, error) {
	p := flightPane{conditions: c, fl: fl, pressure: atmos.PressureFromFL(fl)}
	if err := p.resolve(); err != nil {
		return flightPane{}, err
	}
	return p, nil
}

func (p *flightPane) resolve() error {
	r, err := p.conditions.AtPressure(p.pressure)
	if err != nil {
		return err
	}
	// a typed flight level is kept as is rather than rounded through pressure
	r.FlightLevel = p.fl
	r.QNHAltitude = p.fl * 100 / atmos.FeetPerMeter
	p.reading = r
	return nil
}

func (p flightPane) value(i int) float64 {
	switch i {
	case flightLevel:
		return p.fl
	case flightPressure:
		return p.pressure
	case flightMSLPressure:
		return p.conditions.MSLPressure
	case flightMSLTemperature:
		return p.conditions.MSLTemperature
	}
	return p.conditions.LapseRate
}

func (p *flightPane) set(v float64) error {
	next := *p
	v = flightSliders[p.cursor].clamp(v)
	switch p.cursor {
	case flightLevel:
		next.fl, next.pressure = v, atmos.PressureFromFL(v)
	case flightPressure:
		next.pressure, next.fl = v, atmos.FLFromPressure(v)
	case flightMSLPressure:
		next.conditions.MSLPressure = v
	case flightMSLTemperature:
		next.conditions.MSLTemperature = v
	case flightLapseRate:
		next.conditions.LapseRate = v
	}
	if err := next.resolve(); err != nil {
		return err
	}
	*p = next
	return nil
}

func (m *model) flightKey(msg tea.KeyMsg) {
	var err error
	p := &m.fl
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(flightInputs)-1 {
			p.cursor++
		}
	case "left", "h":
		err = p.set(flightSliders[p.cursor].nudge(p.value(p.cursor), -1))
	case "right", "l":
		err = p.set(flightSliders[p.cursor].nudge(p.value(p.cursor), 1))
	}
	if err != nil {
		m.status = err.Error()
	}
}

func (m *model) setFlight(v float64) {
	if err := m.fl.set(v); err != nil {
		m.status = err.Error()
	}
}

func (m model) viewFlight() string {
	p := m.fl
	units := []string{"", "hPa", "hPa", "°C", "°C/100m"}
	prec := []int{0, 0, 0, 0, 2}

	var b strings.Builder
	for i, name := range flightInputs {
		v := fmt.Sprintf("%.*f %s", prec[i], p.value(i), units[i])
		if i == p.cursor {
			b.WriteString(viz.Selected.Render(fmt.Sprintf("▸ %-16s %s", name, v)) + "\n")
			continue
		}
		b.WriteString(viz.Subtle.Render(fmt.Sprintf("  %-16s ", name)) + viz.Value.Render(v) + "\n")
	}
	inputs := viz.BoxWithTitle("Inputs", b.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, inputs, "  ", viz.FlightLevelPanel(p.reading, p.conditions)) + "\n" +
		m.footer("↑↓ input  ←→ adjust")
}
