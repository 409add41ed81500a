package config

// Config is the root of a gallery configuration file.
type Config struct {
	Version   string          `yaml:"version" validate:"required,semver"`
	Theme     ThemeConfig     `yaml:"theme"`
	Tooltip   TooltipConfig   `yaml:"tooltip"`
	Occasions OccasionsConfig `yaml:"occasions"`
}

// ThemeConfig selects a built-in theme and optional palette overrides.
type ThemeConfig struct {
	// Name picks a built-in theme: default, dark or light.
	Name string `yaml:"name" validate:"omitempty,oneof=default dark light"`
	// Overrides maps palette slot names to hex colors.
	Overrides map[string]string `yaml:"overrides" validate:"omitempty,dive,keys,palette_slot,endkeys,hexcolor"`
	// TooltipMaxWidth caps the tooltip panel width in cells.
	TooltipMaxWidth int `yaml:"tooltip_max_width" validate:"gte=0"`
}

// TooltipConfig sets gallery-wide tooltip defaults.
type TooltipConfig struct {
	Placement     string  `yaml:"placement" validate:"omitempty,placement"`
	Trigger       string  `yaml:"trigger" validate:"omitempty,oneof=hover click focus manual"`
	OpenDelayMs   int     `yaml:"open_delay_ms" validate:"gte=0"`
	CloseDelayMs  int     `yaml:"close_delay_ms" validate:"gte=0"`
	Offset        float64 `yaml:"offset"`
	AutoPlacement *bool   `yaml:"auto_placement"`
}

// OccasionsConfig controls the celebration overlay.
type OccasionsConfig struct {
	// Enabled defaults to true when unset.
	Enabled *bool `yaml:"enabled"`
	// Seed makes the confetti animation reproducible. Zero means
	// seed from the current date.
	Seed   int64            `yaml:"seed"`
	Custom []CustomOccasion `yaml:"custom" validate:"dive"`
}

// CustomOccasion is a user-defined occasion. Either date, or from and
// to, must be set.
type CustomOccasion struct {
	Name   string   `yaml:"name" validate:"required,occasion_name"`
	Date   string   `yaml:"date" validate:"omitempty,month_day"`
	From   string   `yaml:"from" validate:"omitempty,month_day"`
	To     string   `yaml:"to" validate:"omitempty,month_day"`
	Colors []string `yaml:"colors" validate:"omitempty,dive,hexcolor"`
}

// Enabled reports whether the occasion overlay is on.
func (c OccasionsConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// DefaultConfig returns the configuration the gallery runs with when
// no file is supplied.
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Theme:   ThemeConfig{Name: "default"},
		Tooltip: TooltipConfig{
			Placement:    "top",
			Trigger:      "hover",
			OpenDelayMs:  0,
			CloseDelayMs: 0,
			Offset:       1,
		},
	}
}
