package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet represents a semantic color set:
//
//   - Base: the primary background or brand color
//   - OnBase: text color that contrasts well with Base
//   - Muted: a desaturated variant of Base for subtle accents
//   - Contrast: an accent color that "pops" against Base
//
// All colors are adaptive, providing light and dark mode variants.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots for type-safe theme access.
var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// BorderVariant selects a border from the theme's BorderSet.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantFaint
)

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Faint    lipgloss.Style
}

// InputState selects the visual state of an input control.
type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
	InputStateError
	InputStateDisabled
)

// InputStyles describes the per-state styles for input controls.
type InputStyles struct {
	Default  lipgloss.Style
	Focus    lipgloss.Style
	Error    lipgloss.Style
	Disabled lipgloss.Style
	Label    lipgloss.Style
	Help     lipgloss.Style
}

// TooltipStyles describes how the floating tooltip panel is drawn.
type TooltipStyles struct {
	Panel    lipgloss.Style
	MaxWidth int
}

// RatingStyles describes the glyphs and colors of the rating control.
type RatingStyles struct {
	Filled     lipgloss.Style
	Empty      lipgloss.Style
	FilledRune string
	HalfRune   string
	EmptyRune  string
}

// SplitterStyles describes the divider between splitter panes.
type SplitterStyles struct {
	Divider    lipgloss.Style
	Handle     lipgloss.Style
	HandleRune string
}

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSecondary
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantError
	BadgeVariantInfo
)

// VariantRegistry maps component variants to their styling strategies,
// letting themes define variant styling data-driven rather than
// code-driven.
type VariantRegistry struct {
	strategies map[interface{}]StyleStrategy
}

// NewVariantRegistry creates an empty variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[interface{}]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant interface{}, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant interface{}) StyleStrategy {
	return vr.strategies[variant]
}

// Theme represents an immutable styling theme for components. Themes
// should be created once and reused; modifications return new
// instances.
type Theme struct {
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Input      InputStyles
	Tooltip    TooltipStyles
	Rating     RatingStyles
	Splitter   SplitterStyles
	Variants   *VariantRegistry
}

// Normalize returns a new theme with all fields properly initialized,
// so partially-specified themes get sensible defaults.
func (t Theme) Normalize() Theme {
	if spacingTableIsZero(t.Spacing.Padding) {
		t.Spacing.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(t.Spacing.Margin) {
		t.Spacing.Margin = defaultSpacingTable()
	}
	if t.Rating.FilledRune == "" {
		t.Rating.FilledRune = "★"
	}
	if t.Rating.HalfRune == "" {
		t.Rating.HalfRune = "⯪"
	}
	if t.Rating.EmptyRune == "" {
		t.Rating.EmptyRune = "☆"
	}
	if t.Splitter.HandleRune == "" {
		t.Splitter.HandleRune = "┃"
	}
	if t.Tooltip.MaxWidth == 0 {
		t.Tooltip.MaxWidth = 40
	}
	if t.Variants == nil {
		t.Variants = NewVariantRegistry()
	}
	return t
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      2,
		SpacingSizeMedium:     3,
		SpacingSizeLarge:      4,
		SpacingSizeExtraLarge: 6,
	}
}

// DefaultTheme returns the default theme for components.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#06b6d4", "#22d3ee"),
			OnBase:   ac("#083344", "#04121a"),
			Muted:    ac("#0891b2", "#0e7490"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	typography := defaultTypography(palette)

	input := InputStyles{
		Default: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Neutral.Muted).
			Padding(0, 1).
			Foreground(palette.Surface.OnBase),
		Focus: lipgloss.NewStyle().
			BorderStyle(borders.Thick).
			BorderForeground(palette.Primary.Base).
			Padding(0, 1).
			Foreground(palette.Surface.OnBase),
		Error: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Danger.Base).
			Padding(0, 1).
			Foreground(palette.Surface.OnBase),
		Disabled: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Neutral.Muted).
			Padding(0, 1).
			Foreground(palette.Neutral.Base).
			Faint(true),
		Label: typography.Emphasis,
		Help:  typography.Faint,
	}

	tooltip := TooltipStyles{
		Panel: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Neutral.Base).
			Background(palette.Surface.Muted).
			Foreground(palette.Surface.OnBase).
			Padding(0, 1),
		MaxWidth: 40,
	}

	rating := RatingStyles{
		Filled: lipgloss.NewStyle().Foreground(palette.Warning.Base),
		Empty:  lipgloss.NewStyle().Foreground(palette.Neutral.Muted),
	}

	splitter := SplitterStyles{
		Divider:    lipgloss.NewStyle().Foreground(palette.Neutral.Muted),
		Handle:     lipgloss.NewStyle().Foreground(palette.Primary.Base).Bold(true),
		HandleRune: "┃",
	}

	variants := NewVariantRegistry()
	registerBadgeVariants(variants)

	theme := Theme{
		Palette:    palette,
		Borders:    borders,
		Typography: typography,
		Input:      input,
		Tooltip:    tooltip,
		Rating:     rating,
		Splitter:   splitter,
		Variants:   variants,
	}

	return theme.Normalize()
}

func registerBadgeVariants(registry *VariantRegistry) {
	slots := map[BadgeVariant]PaletteSlot{
		BadgeVariantDefault:   PaletteNeutral,
		BadgeVariantPrimary:   PalettePrimary,
		BadgeVariantSecondary: PaletteSecondary,
		BadgeVariantSuccess:   PaletteSuccess,
		BadgeVariantWarning:   PaletteWarning,
		BadgeVariantError:     PaletteDanger,
		BadgeVariantInfo:      PaletteInfo,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSizeExtraSmall),
		))
	}
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Secondary.Muted).Faint(true),
		Body:     base,
		Code:     base.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: base.Bold(true),
		Faint:    base.Faint(true),
	}
}

// DarkTheme returns a dark theme variant.
func DarkTheme() Theme {
	theme := DefaultTheme()

	theme.Palette.Surface = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:    lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
		Contrast: lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"},
	}
	theme.Palette.Neutral = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#475569", Dark: "#334155"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:    lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
		Contrast: lipgloss.AdaptiveColor{Light: "#f8fafc", Dark: "#f8fafc"},
	}

	theme.Typography = defaultTypography(theme.Palette)
	theme.Variants = NewVariantRegistry()
	registerBadgeVariants(theme.Variants)

	return theme.Normalize()
}

// LightTheme returns a light theme variant.
func LightTheme() Theme {
	return DefaultTheme()
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return theme.Borders.None
	}
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin value for the given size.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the
// given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantFaint:
		return typo.Faint
	default:
		return typo.Base
	}
}

// InputStyle returns the input style for the given state.
func InputStyle(theme Theme, state InputState) lipgloss.Style {
	switch state {
	case InputStateFocus:
		return theme.Input.Focus
	case InputStateError:
		return theme.Input.Error
	case InputStateDisabled:
		return theme.Input.Disabled
	default:
		return theme.Input.Default
	}
}

// Fluent modifier functions

// Background applies a semantic background colour and matching
// foreground for legible contrast.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the
// background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(cs.Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// Padding applies uniform padding from the theme's spacing scale.
func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.Padding(value)
	}
}

// PaddingX applies horizontal padding from the theme's spacing scale.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// PaddingY applies vertical padding from the theme's spacing scale.
func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

// Margin applies uniform margin from the theme's spacing scale.
func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.Margin(value)
	}
}

// Typography applies a typography preset from the theme.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
