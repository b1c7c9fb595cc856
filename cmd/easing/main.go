// Command easing evaluates and plots cubic Bézier timing functions.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"honnef.co/go/easing"
	"honnef.co/go/easing/internal/config"
)

var (
	configFile string
	verbose    bool
	preset     string
	points     []float64
	epsilon    float64
	duration   time.Duration
	samples    int
)

var logger = newLogger(io.Discard, false)

// newLogger returns a logger that writes to w if enabled and discards
// everything otherwise.
func newLogger(w io.Writer, enabled bool) *slog.Logger {
	if !enabled {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "easing",
		Short:         "evaluate cubic Bézier timing functions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(cmd.ErrOrStderr(), verbose)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	pf.StringVar(&preset, "preset", "", "named timing function (see presets)")
	pf.Float64SliceVar(&points, "curve", nil, "control values p1x,p1y,p2x,p2y")
	pf.Float64Var(&epsilon, "epsilon", 0, "solver tolerance (derived from --duration if 0)")
	pf.DurationVar(&duration, "duration", 0, "animation duration used to derive the tolerance")
	pf.IntVar(&samples, "samples", 0, "number of samples for plot and table")

	solveCmd := &cobra.Command{
		Use:   "solve x...",
		Short: "print the eased value for each progress value",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSolve,
	}

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "print progress, curve parameter and eased value for evenly spaced samples",
		Args:  cobra.NoArgs,
		RunE:  runTable,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the timing function",
		Args:  cobra.NoArgs,
		RunE:  runPlot,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named timing functions",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(solveCmd, tableCmd, plotCmd, presetsCmd)
	return rootCmd
}

// loadConfig reads the config file, if any, and applies flags that were set
// explicitly on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded config", "path", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("preset") {
		cfg.Curve = config.CurveConfig{Preset: preset}
	}
	if flags.Changed("curve") {
		cfg.Curve = config.CurveConfig{Points: points}
	}
	if flags.Changed("epsilon") {
		cfg.Epsilon = epsilon
	}
	if flags.Changed("duration") {
		cfg.Duration = duration
	}
	if flags.Changed("samples") {
		cfg.Samples = samples
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadCurve(cmd *cobra.Command) (*config.Config, easing.TimingCurve, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, easing.TimingCurve{}, err
	}
	tc, err := cfg.TimingCurve()
	if err != nil {
		return nil, easing.TimingCurve{}, err
	}
	logger.Debug("using curve",
		"curve", tc.String(),
		"epsilon", cfg.SolverEpsilon(),
		"startGradient", tc.StartGradient(),
		"endGradient", tc.EndGradient())
	if !tc.IsMonotonic() {
		logger.Warn("x(t) is not monotonic; results may be inaccurate", "curve", tc.String())
	}
	return cfg, tc, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, tc, err := loadCurve(cmd)
	if err != nil {
		return err
	}
	eps := cfg.SolverEpsilon()
	out := cmd.OutOrStdout()
	for _, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid progress value %q: %w", arg, err)
		}
		fmt.Fprintf(out, "%g\t%g\n", x, tc.Solve(x, eps))
	}
	return nil
}

func runTable(cmd *cobra.Command, args []string) error {
	cfg, tc, err := loadCurve(cmd)
	if err != nil {
		return err
	}
	eps := cfg.SolverEpsilon()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "X\tT\tY")
	for _, pt := range tc.Samples(cfg.Samples, eps) {
		fmt.Fprintf(w, "%.4f\t%.6f\t%.6f\n", pt.X, tc.SolveX(pt.X, eps), pt.Y)
	}
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, tc, err := loadCurve(cmd)
	if err != nil {
		return err
	}
	pts := tc.Samples(cfg.Samples, cfg.SolverEpsilon())
	ys := make([]float64, len(pts))
	for i, pt := range pts {
		ys[i] = pt.Y
	}
	graph := asciigraph.Plot(ys,
		asciigraph.Height(cfg.Plot.Height),
		asciigraph.Width(cfg.Plot.Width),
		asciigraph.Caption(tc.String()),
	)
	fmt.Fprintln(cmd.OutOrStdout(), graph)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tP1\tP2")
	for _, name := range easing.PresetNames() {
		tc, _ := easing.Preset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, tc.P1(), tc.P2())
	}
	return w.Flush()
}
