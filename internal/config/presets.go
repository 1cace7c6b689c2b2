package config

import (
	"fmt"
	"sort"
)

// Presets are partial overrides applied on top of DefaultConfig.
var Presets = map[string]func(*Config){
	"default": func(c *Config) {},
	"swarm": func(c *Config) {
		c.Circles = 400
		c.MinRadiusFrac = 0.005
		c.MaxRadiusFrac = 0.06
		c.Palette = "rainbow"
	},
	"calm": func(c *Config) {
		c.Circles = 20
		c.CrossSecs = 15
		c.MaxPeriodSecs = 60
		c.Palette = "grey"
		c.PauseEaseFrames = 90
	},
	"single": func(c *Config) {
		c.Circles = 1
		c.MaxRadiusFrac = 0.1
	},
	"frantic": func(c *Config) {
		c.Circles = 150
		c.CrossSecs = 2
		c.MaxPeriodSecs = 4
		c.Palette = "primary"
	},
	"dusk": func(c *Config) {
		c.Circles = 80
		c.Palette = "gabby"
		c.PauseEaseFrames = 45
	},
}

// GetPreset returns DefaultConfig with the named preset applied.
func GetPreset(name string) (*Config, error) {
	apply, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
