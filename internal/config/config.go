// Package config loads the settings of the easing tool from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"honnef.co/go/easing"
)

const (
	DefaultPreset     = "ease"
	DefaultSamples    = 41
	DefaultPlotWidth  = 60
	DefaultPlotHeight = 15
)

var ErrUnknownPreset = errors.New("unknown preset")

type Config struct {
	Curve CurveConfig `yaml:"curve"`
	// Epsilon is the solver tolerance. If zero, it is derived from Duration.
	Epsilon  float64       `yaml:"epsilon"`
	Duration time.Duration `yaml:"duration"`
	Samples  int           `yaml:"samples"`
	Plot     PlotConfig    `yaml:"plot"`
}

// CurveConfig selects a timing curve, either by preset name or by its four
// control values p1x, p1y, p2x, p2y. Points take precedence over Preset.
type CurveConfig struct {
	Preset string    `yaml:"preset,omitempty"`
	Points []float64 `yaml:"points,omitempty,flow"`
}

type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Curve:    CurveConfig{Preset: DefaultPreset},
		Duration: time.Second,
		Samples:  DefaultSamples,
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
		},
	}
}

// Load reads the configuration at path. Settings missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := c.TimingCurve(); err != nil {
		return err
	}
	if c.Epsilon < 0 || math.IsNaN(c.Epsilon) {
		return fmt.Errorf("epsilon must not be negative, got %g", c.Epsilon)
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must not be negative, got %s", c.Duration)
	}
	if c.Samples < 2 {
		return fmt.Errorf("need at least 2 samples, got %d", c.Samples)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("invalid plot size %dx%d", c.Plot.Width, c.Plot.Height)
	}
	return nil
}

// TimingCurve resolves the configured curve.
func (c *Config) TimingCurve() (easing.TimingCurve, error) {
	if len(c.Curve.Points) > 0 {
		return CurveFromPoints(c.Curve.Points)
	}
	name := c.Curve.Preset
	if name == "" {
		name = DefaultPreset
	}
	tc, ok := easing.Preset(name)
	if !ok {
		return easing.TimingCurve{}, fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
	return tc, nil
}

// CurveFromPoints builds a timing curve from the control values p1x, p1y,
// p2x, p2y.
func CurveFromPoints(pts []float64) (easing.TimingCurve, error) {
	if len(pts) != 4 {
		return easing.TimingCurve{}, fmt.Errorf("curve needs 4 control values, got %d", len(pts))
	}
	for _, v := range pts {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return easing.TimingCurve{}, fmt.Errorf("control value %g is not finite", v)
		}
	}
	return easing.NewTimingCurve(pts[0], pts[1], pts[2], pts[3]), nil
}

// SolverEpsilon returns the configured epsilon or, if that is unset, one
// derived from the configured duration.
func (c *Config) SolverEpsilon() float64 {
	if c.Epsilon > 0 {
		return c.Epsilon
	}
	return easing.EpsilonForDuration(c.Duration)
}
