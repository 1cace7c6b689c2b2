package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/circlefun/internal/config"
	"github.com/san-kum/circlefun/internal/gui"
	"github.com/san-kum/circlefun/internal/logging"
	"github.com/san-kum/circlefun/internal/palette"
	"github.com/san-kum/circlefun/internal/viz"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"
)

var (
	configFile string
	preset     string
	logLevel   string
	seed       int64
	circles    int
	// headless runs
	dt        float64
	duration  float64
	attractAt string
	repelAt   string
	csvPath   string
	jsonPath  string
	runs      int
	// scripted run
	scenarioPath string
	// analyze
	circleIdx int
	// snapshot
	outPath string
	// tui
	theme   string
	logFile string
	gifPath string
	menu    bool
	// bench
	steps int
	// config
	writePath string
)

// main registers the commands and launches the window when no subcommand
// is given.
func main() {
	rootCmd := &cobra.Command{
		Use:           "circlefun",
		Short:         "circles drifting on a wrapped surface",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "start from a preset")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	rootCmd.PersistentFlags().IntVar(&circles, "circles", 0, "number of circles")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the raylib window",
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", "cyberpunk", "hud theme: "+strings.Join(viz.ThemeNames(), ", "))
	tuiCmd.Flags().StringVar(&logFile, "log-file", "", "write logs here (the terminal is busy)")
	tuiCmd.Flags().StringVar(&gifPath, "gif", "circlefun.gif", "where G saves recordings")
	tuiCmd.Flags().BoolVar(&menu, "menu", false, "pick a preset and palette first")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and plot the mean step per tick",
		RunE:  runHeadless,
	}
	addScriptFlags(runCmd, 10)
	runCmd.Flags().StringVar(&attractAt, "attract", "", "hold the attractor at x,y")
	runCmd.Flags().StringVar(&repelAt, "repel", "", "hold the repeller at x,y")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "write the trace as CSV")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "write the trace as JSON")
	runCmd.Flags().IntVar(&runs, "runs", 1, "run this many seeds in parallel")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "yaml scenario (overrides --dt, --time and the pointer flags)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "measure one circle's drift frequency",
		RunE:  analyzeCircle,
	}
	addScriptFlags(analyzeCmd, 600)
	analyzeCmd.Flags().IntVar(&circleIdx, "circle", 0, "circle index")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render a frame to SVG",
		RunE:  snapshot,
	}
	addScriptFlags(snapshotCmd, 1)
	snapshotCmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file (- for stdout)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time engine ticks",
		RunE:  bench,
	}
	benchCmd.Flags().IntVar(&steps, "steps", 1000, "ticks to time")

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list palettes",
		RunE:  listPalettes,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE:  showConfig,
	}
	configCmd.Flags().StringVar(&writePath, "write", "", "save to this path instead of printing")

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, analyzeCmd, snapshotCmd, benchCmd, palettesCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addScriptFlags(cmd *cobra.Command, defaultTime float64) {
	cmd.Flags().Float64Var(&dt, "dt", 1.0/60, "timestep")
	cmd.Flags().Float64Var(&duration, "time", defaultTime, "duration in seconds")
}

// loadConfig layers preset, config file and flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if configFile != "" {
		c, err := config.Overlay(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("circles") {
		cfg.Circles = circles
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) (*log.Logger, error) {
	return logging.New(w, cfg.LogLevel)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	logger.Debug("starting", "seed", cfg.Seed)
	return gui.Run(cfg, logger)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.Discard()
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		if logger, err = newLogger(cfg, f); err != nil {
			return err
		}
	}

	opts := viz.Options{Config: cfg, Theme: theme, Logger: logger, GIFPath: gifPath}
	if menu {
		return viz.RunMenu(opts)
	}
	return viz.Run(opts)
}

func listPalettes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tables, err := cfg.Tables()
	if err != nil {
		return err
	}
	for _, t := range tables {
		marker := " "
		if t.Name == cfg.Palette {
			marker = "*"
		}
		fmt.Printf("%s %-10s %s\n", marker, t.Name, viz.Swatch(palette.Build(t.Anchors, 40), 40))
	}
	return nil
}

func showConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if writePath != "" {
		return config.Save(writePath, cfg)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

// parseVec reads "x,y".
func parseVec(s string) (*r2.Vec, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("bad y in %q: %w", s, err)
	}
	return &r2.Vec{X: x, Y: y}, nil
}
