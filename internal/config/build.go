package config

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/internal/occasion"
	"github.com/glintui/glint/internal/popover"
	"github.com/glintui/glint/internal/ui/components"
)

// BuildTheme resolves the configured theme name and applies palette
// overrides. The config is assumed validated.
func BuildTheme(cfg ThemeConfig) components.Theme {
	var theme components.Theme
	switch cfg.Name {
	case "dark":
		theme = components.DarkTheme()
	case "light":
		theme = components.LightTheme()
	default:
		theme = components.DefaultTheme()
	}

	for slot, hex := range cfg.Overrides {
		applyOverride(&theme.Palette, slot, hex)
	}
	if cfg.TooltipMaxWidth > 0 {
		theme.Tooltip.MaxWidth = cfg.TooltipMaxWidth
	}

	return theme.Normalize()
}

func applyOverride(p *components.Palette, slot, hex string) {
	color := lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	switch strings.ToLower(slot) {
	case "primary":
		p.Primary.Base = color
	case "secondary":
		p.Secondary.Base = color
	case "surface":
		p.Surface.Base = color
	case "success":
		p.Success.Base = color
	case "warning":
		p.Warning.Base = color
	case "danger":
		p.Danger.Base = color
	case "info":
		p.Info.Base = color
	case "neutral":
		p.Neutral.Base = color
	}
}

// BuildTooltipOptions converts tooltip defaults into popover options.
// The config is assumed validated, so parse failures fall back to the
// zero value.
func BuildTooltipOptions(cfg TooltipConfig) popover.Options {
	opts := popover.Options{
		Offset:     cfg.Offset,
		DelayOpen:  time.Duration(cfg.OpenDelayMs) * time.Millisecond,
		DelayClose: time.Duration(cfg.CloseDelayMs) * time.Millisecond,
	}

	if cfg.Placement != "" {
		if p, err := popover.ParsePlacement(cfg.Placement); err == nil {
			opts.Placement = p
		}
	}
	if cfg.Trigger != "" {
		if mode, ok := popover.ParseTriggerMode(cfg.Trigger); ok {
			opts.Trigger = mode
		}
	}
	if cfg.AutoPlacement != nil {
		opts.AutoPlacement = popover.Bool(*cfg.AutoPlacement)
	}

	return opts
}

// BuildOccasionRegistry returns the built-in occasions plus any custom
// ones from the config. The config is assumed validated.
func BuildOccasionRegistry(cfg OccasionsConfig) *occasion.Registry {
	reg := occasion.DefaultRegistry()

	for _, custom := range cfg.Custom {
		rule := customRule(custom)
		if rule == nil {
			continue
		}
		// Duplicates against the builtins are skipped rather than
		// fatal; the config's own names were already checked.
		_ = reg.Register(occasion.Occasion{
			Name:   custom.Name,
			Rule:   rule,
			Colors: custom.Colors,
		})
	}

	return reg
}

func customRule(c CustomOccasion) occasion.Rule {
	if c.Date != "" {
		month, day, ok := parseMonthDay(c.Date)
		if !ok {
			return nil
		}
		return occasion.FixedDate{Month: month, Day: day}
	}

	fromMonth, fromDay, okFrom := parseMonthDay(c.From)
	toMonth, toDay, okTo := parseMonthDay(c.To)
	if !okFrom || !okTo {
		return nil
	}
	return occasion.DateRange{
		FromMonth: fromMonth,
		FromDay:   fromDay,
		ToMonth:   toMonth,
		ToDay:     toDay,
	}
}

func parseMonthDay(s string) (time.Month, int, bool) {
	matches := monthDayPattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, 0, false
	}
	month := int(matches[1][0]-'0')*10 + int(matches[1][1]-'0')
	day := int(matches[2][0]-'0')*10 + int(matches[2][1]-'0')
	return time.Month(month), day, true
}
