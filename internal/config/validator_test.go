package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	return cfg
}

func TestValidateConfigDefaults(t *testing.T) {
	require.NoError(t, ValidateConfig(validConfig()))
}

func TestValidateConfigNil(t *testing.T) {
	assert.Error(t, ValidateConfig(nil))
}

func TestValidateConfigRejectsBadVersion(t *testing.T) {
	cfg := validConfig()
	cfg.Version = "one.two"

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfigRejectsUnknownThemeName(t *testing.T) {
	cfg := validConfig()
	cfg.Theme.Name = "solarized"

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfigRejectsUnknownPaletteSlot(t *testing.T) {
	cfg := validConfig()
	cfg.Theme.Overrides = map[string]string{"accent": "#ff0000"}

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfigRejectsBadHexOverride(t *testing.T) {
	cfg := validConfig()
	cfg.Theme.Overrides = map[string]string{"primary": "reddish"}

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfigAcceptsAllPlacements(t *testing.T) {
	for _, name := range []string{
		"top", "top-start", "top-end",
		"bottom", "bottom-start", "bottom-end",
		"left", "left-start", "left-end",
		"right", "right-start", "right-end",
	} {
		cfg := validConfig()
		cfg.Tooltip.Placement = name
		assert.NoError(t, ValidateConfig(cfg), name)
	}
}

func TestValidateConfigRejectsUnknownPlacement(t *testing.T) {
	cfg := validConfig()
	cfg.Tooltip.Placement = "center"

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfigRejectsNegativeDelay(t *testing.T) {
	cfg := validConfig()
	cfg.Tooltip.OpenDelayMs = -1

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfigCustomOccasionNeedsDateOrRange(t *testing.T) {
	cfg := validConfig()
	cfg.Occasions.Custom = []CustomOccasion{{Name: "launch-day"}}

	err := ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "either date or from/to")
}

func TestValidateConfigCustomOccasionDateAndRangeExclusive(t *testing.T) {
	cfg := validConfig()
	cfg.Occasions.Custom = []CustomOccasion{{
		Name: "launch-day",
		Date: "06-01",
		From: "06-01",
		To:   "06-03",
	}}

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfigCustomOccasionHalfRange(t *testing.T) {
	cfg := validConfig()
	cfg.Occasions.Custom = []CustomOccasion{{Name: "launch-day", From: "06-01"}}

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfigDuplicateOccasionNames(t *testing.T) {
	cfg := validConfig()
	cfg.Occasions.Custom = []CustomOccasion{
		{Name: "launch-day", Date: "06-01"},
		{Name: "launch-day", Date: "06-02"},
	}

	err := ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate occasion name")
}

func TestValidateConfigRejectsBadMonthDay(t *testing.T) {
	for _, bad := range []string{"13-01", "00-10", "06-32", "6-1", "jun-1"} {
		cfg := validConfig()
		cfg.Occasions.Custom = []CustomOccasion{{Name: "x", Date: bad}}
		assert.Error(t, ValidateConfig(cfg), bad)
	}
}

func TestValidateConfigRejectsBadOccasionName(t *testing.T) {
	cfg := validConfig()
	cfg.Occasions.Custom = []CustomOccasion{{Name: "Launch Day!", Date: "06-01"}}

	assert.Error(t, ValidateConfig(cfg))
}
