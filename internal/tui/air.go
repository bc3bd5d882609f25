package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/atmolab/internal/state"
	"github.com/san-kum/atmolab/internal/viz"
)

type airPane struct {
	cursor int
}

func (p airPane) field() state.Field { return state.Fields[p.cursor] }

func (m *model) airKey(msg tea.KeyMsg) {
	s := m.sess.State()
	f := m.air.field()

	switch msg.String() {
	case "up", "k":
		if m.air.cursor > 0 {
			m.air.cursor--
		}
	case "down", "j":
		if m.air.cursor < len(state.Fields)-1 {
			m.air.cursor++
		}
	case "left", "h":
		m.applyAir(state.Edit{Field: f, Value: airSliders[f].nudge(s.Get(f), -1)})
	case "right", "l":
		m.applyAir(state.Edit{Field: f, Value: airSliders[f].nudge(s.Get(f), 1)})
	case "m":
		if _, ok := m.sess.Marker(); ok {
			m.sess.ClearMarker()
		} else {
			m.sess.Mark()
		}
	case "p":
		prop := m.sess.Propagator()
		m.sess.Reconfigure(prop.Lapse.Next(), prop.Reference)
	case "a":
		prop := m.sess.Propagator()
		ref := prop.Reference
		if ref.Mode == state.QNH {
			ref.Mode = state.QFF
		} else {
			ref.Mode = state.QNH
		}
		m.sess.Reconfigure(prop.Lapse, ref)
	}
}

func (m *model) applyAir(e state.Edit) {
	if _, err := m.sess.Apply(e); err != nil {
		m.status = err.Error()
	}
}

func (m model) viewAir() string {
	r := m.sess.Readout()
	prop := m.sess.Propagator()

	var b strings.Builder
	b.WriteString(viz.Subtle.Render("lapse "+prop.Lapse.String()+"   altimeter "+prop.Reference.Mode.String()) + "\n")
	b.WriteString(viz.FieldRows(r.State, m.air.cursor) + "\n")
	b.WriteString(viz.DerivedRows(r))
	panels := []string{viz.BoxWithTitle("Air sample", b.String())}
	if mk, ok := m.sess.Marker(); ok {
		panels = append(panels, viz.MarkerPanel(mk, r))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, panels...) + "\n" +
		m.footer("↑↓ field  ←→ adjust  m marker  p lapse policy  a altimeter")
}
