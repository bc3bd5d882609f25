package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/atmolab/internal/state"
	"github.com/san-kum/atmolab/internal/viz"
)

// LiveRenderer prints a compact line for every accepted edit. It is the
// non-interactive counterpart of the application and is attached to a
// session as an observer.
type LiveRenderer struct {
	w      io.Writer
	fields []state.Field
	frames int
}

func NewLiveRenderer(w io.Writer, fields ...state.Field) *LiveRenderer {
	if len(fields) == 0 {
		fields = state.Fields
	}
	return &LiveRenderer{w: w, fields: fields}
}

// OnUpdate implements state.Observer.
func (r *LiveRenderer) OnUpdate(rd state.Readout) {
	if r.frames == 0 {
		r.header()
	}
	r.frames++

	cols := make([]string, 0, len(r.fields)+2)
	cols = append(cols, fmt.Sprintf("%3d", r.frames))
	for _, f := range r.fields {
		cols = append(cols, fmt.Sprintf("%12s", viz.FormatField(f, rd.Get(f))))
	}
	cols = append(cols, fmt.Sprintf("%11s", fmt.Sprintf("%.3f kg/m³", rd.AirDensity)))
	line := strings.Join(cols, " ")
	if rd.Saturated {
		line += " " + viz.CloudStyle.Render("☁")
	}
	fmt.Fprintln(r.w, line)
}

func (r *LiveRenderer) header() {
	cols := []string{"  #"}
	for _, f := range r.fields {
		name := viz.FieldLabel(f)
		if len(name) > 12 {
			name = name[:12]
		}
		cols = append(cols, fmt.Sprintf("%12s", name))
	}
	cols = append(cols, fmt.Sprintf("%11s", "density"))
	fmt.Fprintln(r.w, viz.Subtle.Render(strings.Join(cols, " ")))
}
