package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/atmolab/internal/config"
	"github.com/san-kum/atmolab/internal/log"
	"github.com/san-kum/atmolab/internal/state"
	"github.com/san-kum/atmolab/internal/tui"
	"github.com/san-kum/atmolab/internal/viz"
)

var (
	configFile string
	debug      bool
	theme      string
	format     string

	// state and session
	lapse       string
	altimeter   string
	temperature float64
	pressure    float64
	humidity    float64
	sets        []string
	scriptFile  string
	plain       bool

	// profile
	preset      string
	deltaT      float64
	steps       int
	infoLevels  int
	svgFile     string
	svgProfile  string
	table       string
	chartWidth  int
	chartHeight int

	// fl
	flPressure     float64
	mslPressure    float64
	mslTemperature float64
	lapseRate      float64
	sweep          bool
	sweepFrom      float64
	sweepTo        float64
	sweepStep      float64
	showErrors     bool

	// standard
	standardStep float64
	standardTop  float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atmolab",
		Short: "air properties, soundings and altimetry lab",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := log.Init(debug); err != nil {
				return err
			}
			viz.SetTheme(theme)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Sync()
		},
		RunE: runApp,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "sky", "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	stateCmd := &cobra.Command{
		Use:   "state",
		Short: "apply edits to a sample of air and print the result",
		RunE:  runState,
	}
	addStateFlags(stateCmd)
	stateCmd.Flags().StringArrayVar(&sets, "set", nil, "edit as field=value, repeatable, applied in order")
	stateCmd.Flags().StringVar(&scriptFile, "script", "", "edit script (yaml), applied after --set")
	stateCmd.Flags().StringVar(&format, "format", "text", "output format (text, json, csv)")

	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "interactive session",
		RunE:  runSession,
	}
	addStateFlags(sessionCmd)
	sessionCmd.Flags().BoolVar(&plain, "plain", false, "replay --script line by line instead of opening the interface")
	sessionCmd.Flags().StringVar(&scriptFile, "script", "", "edit script (yaml)")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "derive a sounding and simulate a thermal updraft",
		RunE:  runProfile,
	}
	profileCmd.Flags().StringVar(&preset, "preset", "", "use a preset sounding")
	profileCmd.Flags().Float64Var(&deltaT, "delta-t", 0, "parcel temperature excess at the surface (°C)")
	profileCmd.Flags().IntVar(&steps, "steps", 0, "updraft grid points")
	profileCmd.Flags().IntVar(&infoLevels, "info", 0, "also print n interpolated levels")
	profileCmd.Flags().StringVar(&svgFile, "svg", "", "write the sounding diagram as svg")
	profileCmd.Flags().StringVar(&svgProfile, "svg-profile", "", "write the temperature profile as svg")
	profileCmd.Flags().IntVar(&chartWidth, "width", 60, "chart width")
	profileCmd.Flags().IntVar(&chartHeight, "height", 15, "chart height")
	profileCmd.Flags().StringVar(&format, "format", "text", "output format (text, json, csv)")
	profileCmd.Flags().StringVar(&table, "table", "updraft", "csv table (updraft, sounding, info); info uses --info levels, 6 by default")

	flCmd := &cobra.Command{
		Use:   "fl [flight_level]",
		Short: "true altitude of a flight level",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFlightLevel,
	}
	flCmd.Flags().Float64Var(&flPressure, "pressure", 0, "resolve a pressure (hPa) instead of a flight level")
	flCmd.Flags().Float64Var(&mslPressure, "msl-pressure", 0, "mean sea level pressure (hPa)")
	flCmd.Flags().Float64Var(&mslTemperature, "msl-temperature", 0, "mean sea level temperature (°C)")
	flCmd.Flags().Float64Var(&lapseRate, "lapse-rate", 0, "environmental lapse rate (°C/100m)")
	flCmd.Flags().BoolVar(&sweep, "sweep", false, "resolve a range of flight levels")
	flCmd.Flags().Float64Var(&sweepFrom, "from", 50, "first flight level of the sweep")
	flCmd.Flags().Float64Var(&sweepTo, "to", 350, "last flight level of the sweep")
	flCmd.Flags().Float64Var(&sweepStep, "step", 50, "flight level increment of the sweep")
	flCmd.Flags().BoolVar(&showErrors, "errors", false, "print the measured altimetry error tables")
	flCmd.Flags().StringVar(&format, "format", "text", "output format (text, json, csv)")

	standardCmd := &cobra.Command{
		Use:   "standard",
		Short: "standard atmosphere table",
		RunE:  runStandard,
	}
	standardCmd.Flags().Float64Var(&standardStep, "step", 500, "altitude increment (m)")
	standardCmd.Flags().Float64Var(&standardTop, "top", 11000, "highest altitude (m)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list sounding presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				fmt.Printf("  %-12s %s\n", name, config.GetPreset(name).Description)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			log.Infow("config written", "path", args[0])
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(stateCmd, sessionCmd, profileCmd, flCmd, standardCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Errorw("command failed", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func addStateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&lapse, "lapse", config.DefaultLapsePolicy, "lapse policy (none, dry, moist, auto, avg)")
	cmd.Flags().StringVar(&altimeter, "altimeter", config.DefaultAltimeter, "altimeter mode (qnh, qff)")
	cmd.Flags().Float64Var(&temperature, "temperature", config.DefaultTemperature, "initial temperature (°C)")
	cmd.Flags().Float64Var(&pressure, "pressure", config.DefaultPressure, "initial pressure (hPa)")
	cmd.Flags().Float64Var(&humidity, "humidity", 0, "initial specific humidity (g/kg)")
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// stateConfig loads the config and applies the state flags the user set.
func stateConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("lapse") {
		cfg.LapsePolicy = lapse
	}
	if cmd.Flags().Changed("altimeter") {
		cfg.Altimeter = altimeter
	}
	if cmd.Flags().Changed("temperature") {
		cfg.Initial.Temperature = temperature
	}
	if cmd.Flags().Changed("pressure") {
		cfg.Initial.Pressure = pressure
	}
	if cmd.Flags().Changed("humidity") {
		cfg.Initial.SpecificHumidity = humidity
	}
	return cfg, cfg.Validate()
}

func newSession(cfg *config.Config) (*state.Session, error) {
	prop, err := cfg.Propagator()
	if err != nil {
		return nil, err
	}
	return state.NewSession(prop, cfg.InitialState(prop), log.Named("session")), nil
}

func runApp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sess, err := newSession(cfg)
	if err != nil {
		return err
	}
	return tui.Run(cfg, sess, log.Named("tui"))
}

// parseSet reads a field=value edit.
func parseSet(s string) (state.Edit, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return state.Edit{}, fmt.Errorf("invalid edit %q, want field=value", s)
	}
	f, err := state.ParseField(name)
	if err != nil {
		return state.Edit{}, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return state.Edit{}, fmt.Errorf("invalid value in %q: %w", s, err)
	}
	return state.Edit{Field: f, Value: v}, nil
}

func collectEdits() ([]state.Edit, error) {
	var edits []state.Edit
	for _, s := range sets {
		e, err := parseSet(s)
		if err != nil {
			return nil, err
		}
		edits = append(edits, e)
	}
	if scriptFile != "" {
		script, err := config.LoadScript(scriptFile)
		if err != nil {
			return nil, err
		}
		more, err := script.Parse()
		if err != nil {
			return nil, err
		}
		edits = append(edits, more...)
	}
	return edits, nil
}

func checkFormat() error {
	switch format {
	case "text", "json", "csv":
		return nil
	}
	return fmt.Errorf("unknown format: %s (available: text, json, csv)", format)
}

// writeFile writes content to path, or to stdout when path is "-".
func writeFile(path, content string) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}
	_, err := io.WriteString(w, content)
	return err
}
