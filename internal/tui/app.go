package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/san-kum/atmolab/internal/config"
	"github.com/san-kum/atmolab/internal/state"
	"github.com/san-kum/atmolab/internal/viz"
)

type screen int

const (
	screenMenu screen = iota
	screenAir
	screenThermal
	screenFlight
)

var tools = []struct {
	name, info string
	screen     screen
}{
	{"air", "humidity, temperature and pressure of a sample", screenAir},
	{"thermal", "sounding and updraft", screenThermal},
	{"flight levels", "true altitude of a pressure level", screenFlight},
}

type model struct {
	screen screen
	cursor int

	editing bool
	editBuf string
	status  string

	sess  *state.Session
	air   airPane
	therm thermalPane
	fl    flightPane

	log *zap.SugaredLogger

	width  int
	height int
}

// NewApp builds the interactive application from cfg. The session is shared
// with the caller, which may observe it.
func NewApp(cfg *config.Config, sess *state.Session, logger *zap.SugaredLogger) (*model, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	therm, err := newThermalPane(cfg.Levels, cfg.MaxAltitude, cfg.Updraft)
	if err != nil {
		return nil, err
	}
	fl, err := newFlightPane(cfg.Altimetry, 115)
	if err != nil {
		return nil, err
	}
	return &model{
		screen: screenMenu,
		sess:   sess,
		therm:  therm,
		fl:     fl,
		log:    logger,
		width:  80,
		height: 24,
	}, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.editing {
		return m.editKey(msg)
	}
	if m.screen == screenMenu {
		return m.menuKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.screen, m.status = screenMenu, ""
		return m, nil
	case "enter":
		m.editing, m.editBuf = true, ""
		return m, nil
	}

	m.status = ""
	switch m.screen {
	case screenAir:
		m.airKey(msg)
	case screenThermal:
		m.thermalKey(msg)
	case screenFlight:
		m.flightKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(tools)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.screen = tools[m.cursor].screen
	}
	return m, nil
}

// editKey collects a typed number; enter commits it to the selected value.
func (m model) editKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editing = false
		v, err := strconv.ParseFloat(m.editBuf, 64)
		m.editBuf = ""
		if err != nil {
			m.status = "not a number"
			return m, nil
		}
		m.commit(v)
	case "esc":
		m.editing, m.editBuf = false, ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if s := msg.String(); len(s) == 1 {
			c := s[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' {
				m.editBuf += s
			}
		}
	}
	return m, nil
}

func (m *model) commit(v float64) {
	switch m.screen {
	case screenAir:
		m.applyAir(state.Edit{Field: m.air.field(), Value: v})
	case screenThermal:
		m.setThermal(v)
	case screenFlight:
		m.setFlight(v)
	}
}

func (m model) View() string {
	switch m.screen {
	case screenAir:
		return m.viewAir()
	case screenThermal:
		return m.viewThermal()
	case screenFlight:
		return m.viewFlight()
	}
	return m.viewMenu()
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(viz.Subtle.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + viz.Title.Render("a t m o l a b") + "\n")
	b.WriteString(viz.Subtle.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, t := range tools {
		if i == m.cursor {
			b.WriteString("      " + viz.Selected.Render("▸ "+fmt.Sprintf("%-16s", t.name)) + viz.Subtle.Render(t.info) + "\n")
		} else {
			b.WriteString("        " + viz.Subtle.Render(fmt.Sprintf("%-16s", t.name)+t.info) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(viz.KeyHint.Render("      ↑↓ select   enter open   q quit") + "\n")
	return b.String()
}

func (m model) footer(keys string) string {
	var b strings.Builder
	if m.editing {
		b.WriteString(viz.Selected.Render("  = "+m.editBuf+"▋") + "\n")
	}
	if m.status != "" {
		b.WriteString(viz.ErrorStyle.Render("  "+m.status) + "\n")
	}
	b.WriteString(viz.KeyHint.Render("  "+keys+"  enter type value  esc menu  q quit") + "\n")
	return b.String()
}

// Run starts the interactive application on the terminal.
func Run(cfg *config.Config, sess *state.Session, logger *zap.SugaredLogger) error {
	m, err := NewApp(cfg, sess, logger)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

