package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/atmolab/internal/profile"
	"github.com/san-kum/atmolab/internal/viz"
)

const (
	colAltitude = iota
	colTemperature
	colHumidity
)

var columnNames = []string{"altitude", "temperature", "humidity"}

// thermalPane edits a sounding. Row 0 is the parcel excess, rows 1..n are
// the levels from the top down.
type thermalPane struct {
	levels      []profile.Level
	maxAltitude float64
	updraft     profile.UpdraftConfig

	sounding *profile.Sounding
	result   profile.Updraft

	row, col int
}

func newThermalPane(levels []profile.Level, maxAltitude float64, cfg profile.UpdraftConfig) (thermalPane, error) {
	p := thermalPane{maxAltitude: maxAltitude, updraft: cfg, col: colTemperature}
	if err := p.rebuild(levels); err != nil {
		return thermalPane{}, err
	}
	return p, nil
}

// rebuild derives the sounding and updraft for levels. On error the pane
// keeps its previous levels.
func (p *thermalPane) rebuild(levels []profile.Level) error {
	s, err := profile.Derive(levels, p.maxAltitude)
	if err != nil {
		return err
	}
	up, err := s.Updraft(p.updraft)
	if err != nil {
		return err
	}
	sorted := append([]profile.Level(nil), levels...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Altitude < sorted[j].Altitude })
	p.levels, p.sounding, p.result = sorted, s, up
	return nil
}

// level returns the index into levels of the selected row, or -1 for the
// excess row.
func (p thermalPane) level() int {
	if p.row == 0 {
		return -1
	}
	return len(p.levels) - p.row
}

func (p thermalPane) value() float64 {
	i := p.level()
	if i < 0 {
		return p.updraft.DeltaT
	}
	l := p.levels[i]
	switch p.col {
	case colAltitude:
		return l.Altitude
	case colHumidity:
		return l.RelativeHumidity
	}
	return l.Temperature
}

func (p *thermalPane) set(v float64) error {
	i := p.level()
	if i < 0 {
		old := p.updraft
		p.updraft.DeltaT = deltaTSlider.clamp(v)
		if err := p.rebuild(p.levels); err != nil {
			p.updraft = old
			return err
		}
		return nil
	}

	levels := append([]profile.Level(nil), p.levels...)
	switch p.col {
	case colAltitude:
		levels[i].Altitude = v
	case colTemperature:
		levels[i].Temperature = levelTemperature.clamp(v)
	case colHumidity:
		levels[i].RelativeHumidity = levelHumidity.clamp(v)
	}
	if err := p.rebuild(levels); err != nil {
		return err
	}
	// keep the cursor on the edited level after re-sorting
	for j, l := range p.levels {
		if l == levels[i] {
			p.row = len(p.levels) - j
		}
	}
	return nil
}

func (p *thermalPane) nudge(dir int) error {
	if p.level() < 0 {
		return p.set(deltaTSlider.nudge(p.updraft.DeltaT, dir))
	}
	switch p.col {
	case colAltitude:
		return p.set(p.value() + float64(dir)*levelAltitudeStep)
	case colHumidity:
		return p.set(levelHumidity.nudge(p.value(), dir))
	}
	return p.set(levelTemperature.nudge(p.value(), dir))
}

// insert adds a level halfway between the selected level and the one below.
func (p *thermalPane) insert() error {
	i := p.level()
	if i <= 0 {
		return nil
	}
	a, b := p.levels[i-1], p.levels[i]
	mid := profile.Level{
		Altitude:         (a.Altitude + b.Altitude) / 2,
		Temperature:      (a.Temperature + b.Temperature) / 2,
		RelativeHumidity: (a.RelativeHumidity + b.RelativeHumidity) / 2,
	}
	return p.rebuild(append(append([]profile.Level(nil), p.levels...), mid))
}

func (p *thermalPane) remove() error {
	i := p.level()
	if i < 0 {
		return nil
	}
	levels := append(append([]profile.Level(nil), p.levels[:i]...), p.levels[i+1:]...)
	if err := p.rebuild(levels); err != nil {
		return err
	}
	p.row = min(p.row, len(p.levels))
	return nil
}

func (m *model) thermalKey(msg tea.KeyMsg) {
	var err error
	switch msg.String() {
	case "up", "k":
		if m.therm.row > 0 {
			m.therm.row--
		}
	case "down", "j":
		if m.therm.row < len(m.therm.levels) {
			m.therm.row++
		}
	case "tab":
		m.therm.col = (m.therm.col + 1) % len(columnNames)
	case "left", "h":
		err = m.therm.nudge(-1)
	case "right", "l":
		err = m.therm.nudge(1)
	case "+":
		err = m.therm.insert()
	case "-":
		err = m.therm.remove()
	}
	if err != nil {
		m.status = err.Error()
		return
	}
	m.log.Debugw("updraft", "top", m.therm.result.Top().Altitude, "ceiling", m.therm.result.Ceiling.String())
}

func (m *model) setThermal(v float64) {
	if err := m.therm.set(v); err != nil {
		m.status = err.Error()
	}
}

func (m model) viewThermal() string {
	p := m.therm
	var b strings.Builder

	cell := func(row, col int, text string) string {
		if row == p.row && (row == 0 || col == p.col) {
			return viz.Selected.Render(text)
		}
		return text
	}
	b.WriteString(cell(0, 0, fmt.Sprintf("parcel excess %.1f °C", p.updraft.DeltaT)) + "\n\n")
	lo, hi := viz.TemperatureRange(p.sounding.Levels(), p.updraft.DeltaT)
	for row := 1; row <= len(p.levels); row++ {
		l := p.levels[len(p.levels)-row]
		line := cell(row, colAltitude, fmt.Sprintf("%6.0f m", l.Altitude)) + "  " +
			cell(row, colTemperature, lipgloss.NewStyle().Foreground(viz.TemperatureColor(lo, hi, l.Temperature)).Render(fmt.Sprintf("%5.1f °C", l.Temperature))) + "  " +
			cell(row, colHumidity, fmt.Sprintf("%3.0f %%", l.RelativeHumidity))
		b.WriteString(line + "\n")
	}

	left := viz.BoxWithTitle("Levels", b.String())
	right := viz.SoundingDiagram(p.sounding, p.result, 30, 12)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right) + "\n" +
		viz.UpdraftSummary(p.result) + "\n" +
		m.footer("↑↓ row  tab column ("+columnNames[p.col]+")  ←→ adjust  + add  - remove")
}
