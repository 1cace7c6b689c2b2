package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/san-kum/circlefun/internal/palette"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCircles        = 50
	DefaultMinRadiusFrac  = 0.025
	DefaultMaxRadiusFrac  = 0.2
	DefaultCrossSecs      = 5.0
	DefaultMaxPeriodSecs  = 30.0
	DefaultPushForce      = 40000.0
	DefaultPullForce      = 100000.0
	DefaultPullSpeedCap   = 3000.0
	DefaultPalette        = "heat"
	DefaultStartTime      = 10.0
	DefaultResizeStep     = 50
	DefaultFPS            = 60
	DefaultLogLevel       = "info"
	DefaultHeadlessWidth  = 1920
	DefaultHeadlessHeight = 1080
)

var (
	ErrInvalidConfig = errors.New("config: invalid value")
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// Config is everything a host needs to build an engine. A zero Width or
// Height means "use the display size".
type Config struct {
	Circles         int                 `yaml:"circles"`
	Width           float64             `yaml:"width"`
	Height          float64             `yaml:"height"`
	MinRadiusFrac   float64             `yaml:"min_radius_frac"`
	MaxRadiusFrac   float64             `yaml:"max_radius_frac"`
	CrossSecs       float64             `yaml:"cross_secs"`
	MaxPeriodSecs   float64             `yaml:"max_period_secs"`
	PushForce       float64             `yaml:"push_force"`
	PullForce       float64             `yaml:"pull_force"`
	PullSpeedCap    float64             `yaml:"pull_speed_cap"`
	Palette         string              `yaml:"palette"`
	Seed            int64               `yaml:"seed"`
	StartTime       float64             `yaml:"start_time"`
	PauseEaseFrames int                 `yaml:"pause_ease_frames"`
	ResizeStep      int                 `yaml:"resize_step"`
	FPS             int                 `yaml:"fps"`
	ShowHUD         bool                `yaml:"show_hud"`
	LogLevel        string              `yaml:"log_level"`
	Palettes        map[string][]string `yaml:"palettes,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Circles:       DefaultCircles,
		MinRadiusFrac: DefaultMinRadiusFrac,
		MaxRadiusFrac: DefaultMaxRadiusFrac,
		CrossSecs:     DefaultCrossSecs,
		MaxPeriodSecs: DefaultMaxPeriodSecs,
		PushForce:     DefaultPushForce,
		PullForce:     DefaultPullForce,
		PullSpeedCap:  DefaultPullSpeedCap,
		Palette:       DefaultPalette,
		StartTime:     DefaultStartTime,
		ResizeStep:    DefaultResizeStep,
		FPS:           DefaultFPS,
		ShowHUD:       true,
		LogLevel:      DefaultLogLevel,
	}
}

// Load overlays the YAML file at path on the defaults.
func Load(path string) (*Config, error) {
	return Overlay(path, DefaultConfig())
}

// Overlay reads the YAML file at path over a copy of base, so a preset
// can be refined by a file. Keys missing from the file keep base's value.
func Overlay(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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

func (c *Config) Clone() *Config {
	cp := *c
	if c.Palettes != nil {
		cp.Palettes = make(map[string][]string, len(c.Palettes))
		for k, v := range c.Palettes {
			cp.Palettes[k] = append([]string(nil), v...)
		}
	}
	return &cp
}

func (c *Config) Validate() error {
	switch {
	case c.Circles < 0:
		return fmt.Errorf("%w: circles must be >= 0, got %d", ErrInvalidConfig, c.Circles)
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("%w: width and height must be >= 0", ErrInvalidConfig)
	case c.MinRadiusFrac <= 0:
		return fmt.Errorf("%w: min_radius_frac must be positive, got %f", ErrInvalidConfig, c.MinRadiusFrac)
	case c.MaxRadiusFrac < c.MinRadiusFrac:
		return fmt.Errorf("%w: max_radius_frac %f below min_radius_frac %f", ErrInvalidConfig, c.MaxRadiusFrac, c.MinRadiusFrac)
	case c.CrossSecs <= 0:
		return fmt.Errorf("%w: cross_secs must be positive, got %f", ErrInvalidConfig, c.CrossSecs)
	case c.MaxPeriodSecs <= 0:
		return fmt.Errorf("%w: max_period_secs must be positive, got %f", ErrInvalidConfig, c.MaxPeriodSecs)
	case c.PushForce < 0 || c.PullForce < 0 || c.PullSpeedCap < 0:
		return fmt.Errorf("%w: forces must be >= 0", ErrInvalidConfig)
	case c.PauseEaseFrames < 0:
		return fmt.Errorf("%w: pause_ease_frames must be >= 0", ErrInvalidConfig)
	case c.ResizeStep <= 0:
		return fmt.Errorf("%w: resize_step must be positive, got %d", ErrInvalidConfig, c.ResizeStep)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if _, err := c.Tables(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.PaletteIndex(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Tables returns the builtin palettes followed by the custom ones in
// name order. A custom table may shadow a builtin of the same name.
func (c *Config) Tables() ([]palette.Table, error) {
	tables := make([]palette.Table, len(palette.Builtin))
	copy(tables, palette.Builtin)

	names := make([]string, 0, len(c.Palettes))
	for name := range c.Palettes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		anchors, err := palette.ParseAnchors(c.Palettes[name])
		if err != nil {
			return nil, fmt.Errorf("palette %q: %w", name, err)
		}
		replaced := false
		for i := range tables {
			if tables[i].Name == name {
				tables[i].Anchors = anchors
				replaced = true
			}
		}
		if !replaced {
			tables = append(tables, palette.Table{Name: name, Anchors: anchors})
		}
	}
	return tables, nil
}

// PaletteIndex is the position of Palette within Tables.
func (c *Config) PaletteIndex() (int, error) {
	tables, err := c.Tables()
	if err != nil {
		return 0, err
	}
	for i, t := range tables {
		if t.Name == c.Palette {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", palette.ErrUnknownPalette, c.Palette)
}

// Radii converts the radius fractions to pixels for a surface height.
func (c *Config) Radii(height float64) (minR, maxR float64) {
	return height * c.MinRadiusFrac, height * c.MaxRadiusFrac
}

// Speed is the drift speed in px/s: a full-speed circle crosses the
// width in CrossSecs.
func (c *Config) Speed(width float64) float64 {
	return width / c.CrossSecs
}

// HeadlessDims is the surface size used when no display is attached.
func (c *Config) HeadlessDims() (float64, float64) {
	w, h := c.Width, c.Height
	if w == 0 {
		w = DefaultHeadlessWidth
	}
	if h == 0 {
		h = DefaultHeadlessHeight
	}
	return w, h
}
