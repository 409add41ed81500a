// Package components provides a declarative, theme-aware UI component library for terminal applications.
//
// # Overview
//
// This package offers a React-inspired component model built on top of lipgloss for terminal UI
// rendering. All components are themeable, composable, and type-safe. Interactive components
// (inputs, ratings, splitters, uploads) follow the bubbletea update loop; presentational
// components render to plain strings.
//
// # Architecture
//
// The component system has three layers:
//
//  1. Theme Layer - Immutable theme definitions (colors, spacing, typography, component styles)
//  2. Modifier Layer - StyleFunc transformations that apply theme data to styles
//  3. Component Layer - Composable UI elements that render to strings
//
// # Theme System
//
// Themes are immutable and passed explicitly through RenderContext, eliminating global state:
//
//	theme := components.DefaultTheme()
//	ctx := components.DefaultContext().WithTheme(theme)
//	output := component.ViewWithContext(ctx)
//
// For simple cases, View() uses the default theme automatically:
//
//	output := component.View()
//
// # Core Components
//
// Primitive components:
//   - Text: Styled text content
//   - Divider: Visual separators
//
// Layout components:
//   - Stack: Vertical/horizontal arrangement with gaps and alignment
//   - Splitter: Two resizable panes separated by a draggable divider
//
// Semantic components:
//   - Badge: Status indicators and bounded counters
//   - Input: Labelled single-line text entry with validation states
//   - Rating: Half-step star scale, interactive or read-only
//   - Tooltip: Floating panel anchored to a trigger region
//   - Upload: File selection queue with per-file progress
//
// # Tooltips and Overlays
//
// Tooltip delegates placement and the open/close lifecycle to the popover engine. The open
// panel is painted over an already-rendered frame:
//
//	tip := NewTooltip("Saved!").WithPlacement(popover.PlacementBottomStart)
//	tip.SetViewportSize(width, height)
//	tip.SetTriggerRect(row, col, w, h)
//	tip.PointerEnter()
//	frame = tip.RenderOverlay(frame, ctx)
//
// PlaceOverlay is ANSI-aware and can composite any panel string at any cell coordinate.
//
// # Style Modifiers
//
// Components accept theme-aware style functions through WithAppliers:
//
//	badge := NewBadge("beta", BadgeVariantInfo).WithAppliers(
//		Padding(SpacingSizeSmall),
//		Border(BorderVariantRounded),
//	)
//
// Available modifiers:
//   - Background(slot): Semantic background color with matching foreground
//   - Foreground(slot): Semantic text color
//   - Border(variant): Border style from theme
//   - Padding/PaddingX/PaddingY(size): Spacing from theme scale
//   - Margin(size): Margin from theme scale
//   - Typography(variant): Typography preset from theme
//
// # Composition
//
// Components compose naturally through the ui.Renderable interface:
//
//	content := VStack(
//		TitleText("Settings"),
//		HorizontalDivider(),
//		NewInput("Name").WithPlaceholder("Ada"),
//		NewRating(3.5, 5),
//	).WithGap(1)
//
// # Type Safety
//
// The package uses typed enums instead of magic strings:
//
//	SpacingSize:       SpacingSizeSmall, SpacingSizeMedium, etc.
//	BadgeVariant:      BadgeVariantSuccess, BadgeVariantWarning, etc.
//	PaletteSlot:       PalettePrimary, PaletteSuccess, etc.
//	BorderVariant:     BorderVariantRounded, BorderVariantThick, etc.
//	TypographyVariant: TypographyVariantTitle, TypographyVariantBody, etc.
//
// # Custom Themes
//
// Create custom themes by modifying the default:
//
//	customTheme := components.DefaultTheme()
//	customTheme.Tooltip.MaxWidth = 60
//	customTheme = customTheme.Normalize() // Ensure all fields are initialized
//
// # Performance
//
// Themes are immutable value types, avoiding expensive cloning. Rendering is stateless and
// deterministic - the same component with the same context always produces the same output.
package components
