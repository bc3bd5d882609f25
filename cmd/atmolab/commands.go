package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/atmolab/internal/altimetry"
	"github.com/san-kum/atmolab/internal/atmos"
	"github.com/san-kum/atmolab/internal/config"
	"github.com/san-kum/atmolab/internal/export"
	"github.com/san-kum/atmolab/internal/log"
	"github.com/san-kum/atmolab/internal/profile"
	"github.com/san-kum/atmolab/internal/state"
	"github.com/san-kum/atmolab/internal/tui"
	"github.com/san-kum/atmolab/internal/viz"
)

func runState(cmd *cobra.Command, args []string) error {
	if err := checkFormat(); err != nil {
		return err
	}
	cfg, err := stateConfig(cmd)
	if err != nil {
		return err
	}
	edits, err := collectEdits()
	if err != nil {
		return err
	}
	sess, err := newSession(cfg)
	if err != nil {
		return err
	}
	initial := sess.Readout()
	if format == "text" {
		sess.AddObserver(tui.NewLiveRenderer(os.Stdout))
	}

	readouts := make([]state.Readout, 0, len(edits))
	for i, e := range edits {
		if _, err := sess.Apply(e); err != nil {
			return fmt.Errorf("edit %d (%s): %w", i+1, e, err)
		}
		readouts = append(readouts, sess.Readout())
	}

	switch format {
	case "json":
		return export.WriteJSON(os.Stdout, export.NewSessionData(sess.Propagator(), initial, edits, readouts))
	case "csv":
		return export.WriteReadoutsCSV(os.Stdout, append([]state.Readout{initial}, readouts...))
	}
	fmt.Println()
	fmt.Println(viz.BoxWithTitle(fmt.Sprintf("Air · %s · %s", sess.Propagator().Lapse, sess.Propagator().Reference.Mode), viz.ReadoutPanel(sess.Readout())))
	return nil
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := stateConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := newSession(cfg)
	if err != nil {
		return err
	}
	if !plain {
		return tui.Run(cfg, sess, log.Named("tui"))
	}
	if scriptFile == "" {
		return fmt.Errorf("--plain needs --script")
	}

	return replayScript(os.Stdout, sess, scriptFile)
}

// replayScript prints one line per scripted edit, then the final state next
// to the state the script started from.
func replayScript(w io.Writer, sess *state.Session, path string) error {
	script, err := config.LoadScript(path)
	if err != nil {
		return err
	}
	sess.AddObserver(tui.NewLiveRenderer(w))
	sess.Mark()
	readouts, err := script.Run(sess)
	if err != nil {
		return err
	}
	log.Infow("script replayed", "name", script.Name, "edits", len(readouts))
	m, _ := sess.Marker()
	fmt.Fprintln(w)
	fmt.Fprintln(w, viz.MarkerPanel(m, sess.Readout()))
	return nil
}

const defaultInfoLevels = 6

func runProfile(cmd *cobra.Command, args []string) error {
	if err := checkFormat(); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if preset != "" {
		if err := cfg.UsePreset(preset); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("delta-t") {
		cfg.Updraft.DeltaT = deltaT
	}
	if cmd.Flags().Changed("steps") {
		cfg.Updraft.Steps = steps
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	s, err := cfg.Sounding()
	if err != nil {
		return err
	}
	up, err := s.Updraft(cfg.Updraft)
	if err != nil {
		return err
	}
	log.Debugw("updraft", "levels", len(up.Levels), "top", up.Top().Altitude, "ceiling", up.Ceiling.String())
	if up.Ceiling == profile.ReachedTop && s.Top().Altitude < s.MaxAltitude() {
		log.Warnw("updraft stopped at the highest sample", "top", s.Top().Altitude, "max_altitude", s.MaxAltitude())
	}

	if svgFile != "" {
		c, _, _ := viz.SoundingCanvas(s, up, chartWidth/2, chartHeight)
		if err := writeFile(svgFile, export.CanvasToSVG(c, 6)); err != nil {
			return err
		}
	}
	if svgProfile != "" {
		if err := writeFile(svgProfile, export.ProfileToSVG(s, up, 480, 360)); err != nil {
			return err
		}
	}

	switch format {
	case "json":
		var info []profile.DerivedLevel
		if infoLevels > 0 {
			info = s.InfoLevels(infoLevels)
		}
		return export.WriteJSON(os.Stdout, export.NewSoundingData(s, cfg.Updraft, up, info))
	case "csv":
		return writeProfileCSV(os.Stdout, s, up)
	}

	fmt.Println(viz.BoxWithTitle("Sounding", viz.SoundingTable(s.Levels(), cfg.Updraft.DeltaT)))
	if infoLevels > 0 {
		fmt.Println(viz.BoxWithTitle("Interpolated", viz.SoundingTable(s.InfoLevels(infoLevels), cfg.Updraft.DeltaT)))
	}
	fmt.Println(viz.BoxWithTitle("Thermal", viz.UpdraftSummary(up)))
	fmt.Println(viz.UpdraftChart(s, up, cfg.Updraft.Steps, chartWidth, chartHeight))
	fmt.Println()
	fmt.Println(viz.ExcessChart(up, chartWidth, chartHeight/2))
	fmt.Println()
	fmt.Println(viz.SoundingDiagram(s, up, chartWidth/2, chartHeight))
	return nil
}

func writeProfileCSV(w io.Writer, s *profile.Sounding, up profile.Updraft) error {
	switch table {
	case "updraft":
		return export.WriteUpdraftCSV(w, up)
	case "sounding":
		return export.WriteSoundingCSV(w, s.Levels())
	case "info":
		n := infoLevels
		if n <= 0 {
			n = defaultInfoLevels
		}
		return export.WriteSoundingCSV(w, s.InfoLevels(n))
	}
	return fmt.Errorf("unknown table: %s (available: updraft, sounding, info)", table)
}

func runFlightLevel(cmd *cobra.Command, args []string) error {
	if err := checkFormat(); err != nil {
		return err
	}
	if showErrors {
		for _, t := range altimetry.ErrorTables {
			fmt.Println(viz.ErrorTablePanel(t))
		}
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c := cfg.Altimetry
	if cmd.Flags().Changed("msl-pressure") {
		c.MSLPressure = mslPressure
	}
	if cmd.Flags().Changed("msl-temperature") {
		c.MSLTemperature = mslTemperature
	}
	if cmd.Flags().Changed("lapse-rate") {
		c.LapseRate = lapseRate
	}

	var readings []altimetry.Reading
	switch {
	case sweep:
		readings, err = c.Sweep(sweepFrom, sweepTo, sweepStep)
	case cmd.Flags().Changed("pressure"):
		var r altimetry.Reading
		r, err = c.AtPressure(flPressure)
		readings = append(readings, r)
	default:
		fl := 100.0
		if len(args) == 1 {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid flight level %q: %w", args[0], err)
			}
			fl = v
		}
		var r altimetry.Reading
		r, err = c.AtFlightLevel(fl)
		readings = append(readings, r)
	}
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return export.WriteJSON(os.Stdout, export.FlightLevelData{Conditions: c, Readings: readings})
	case "csv":
		return export.WriteFlightLevelsCSV(os.Stdout, readings)
	}
	if !sweep {
		fmt.Println(viz.FlightLevelPanel(readings[0], c))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "FL\tPRESSURE\tTEMP\tTRUE ALT\tSTANDARD\tQNH")
	for _, e := range altimetry.Extremes {
		fmt.Fprintf(w, "\t%s", e.Name)
	}
	fmt.Fprintln(w)
	for _, r := range readings {
		fmt.Fprintf(w, "%.0f\t%.1f hPa\t%.1f °C\t%.0f m\t%.0f m\t%.0f m",
			r.FlightLevel, r.Pressure, r.Temperature, r.Altitude, r.StandardAltitude, r.QNHAltitude)
		for _, e := range r.Extremes {
			fmt.Fprintf(w, "\t%.0f m", e.Altitude)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func runStandard(cmd *cobra.Command, args []string) error {
	if standardStep <= 0 {
		return fmt.Errorf("step must be positive")
	}
	if standardTop > atmos.TropopauseAltitude {
		return fmt.Errorf("top %.0f m is above the tropopause (%.0f m)", standardTop, atmos.TropopauseAltitude)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALTITUDE\tPRESSURE\tFL\tBOILING POINT")
	for h := 0.0; h <= standardTop; h += standardStep {
		p := atmos.PressureFromStandardAltitude(h)
		fmt.Fprintf(w, "%.0f m\t%.1f hPa\t%.0f\t%.1f °C\n", h, p, atmos.FLFromPressure(p), atmos.BoilingPoint(p))
	}
	return w.Flush()
}
