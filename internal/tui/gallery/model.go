package gallery

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glintui/glint/internal/config"
	"github.com/glintui/glint/internal/logger"
	"github.com/glintui/glint/internal/occasion"
	"github.com/glintui/glint/internal/popover"
	"github.com/glintui/glint/internal/ui/components"
)

// Model is the component gallery application model.
type Model struct {
	// Configuration
	cfg   *config.Config
	theme components.Theme
	log   *logger.Logger

	// UI state
	page    Page
	width   int
	height  int
	focused bool

	// Component state
	counterClicks int

	counter  *components.Badge
	input    *components.Input
	rating   *components.Rating
	splitter *components.Splitter
	upload   *components.Upload
	tooltip  *components.Tooltip

	// Tooltip trigger geometry, in cells, recomputed on resize.
	triggerTop, triggerLeft     int
	triggerWidth, triggerHeight int
	pointerOver                 bool

	// Celebration state
	occasions    *occasion.Registry
	confetti     *occasion.Field
	occasionName string

	now func() time.Time
}

// NewModel creates a gallery model from a validated configuration.
func NewModel(cfg *config.Config, log *logger.Logger) Model {
	theme := config.BuildTheme(cfg.Theme)

	tooltip := components.NewTooltip("Tooltips follow their trigger and flip away from screen edges.")
	opts := config.BuildTooltipOptions(cfg.Tooltip)
	tooltip.
		WithPlacement(opts.Placement).
		WithTrigger(opts.Trigger).
		WithDelays(opts.DelayOpen, opts.DelayClose).
		WithOffset(opts.Offset)
	if opts.AutoPlacement != nil {
		tooltip.WithAutoPlacement(*opts.AutoPlacement)
	}

	m := Model{
		cfg:       cfg,
		theme:     theme,
		log:       log,
		page:      PageBadges,
		counter:   components.NewCounterBadge(0),
		input:     components.NewInput("type here").WithLabel("Name").WithHelp("enter and tab move focus"),
		rating:    components.NewRating(5).WithValue(3.5),
		upload:    components.NewUpload().WithMaxFiles(5),
		tooltip:   tooltip,
		occasions: config.BuildOccasionRegistry(cfg.Occasions),
		now:       time.Now,

		triggerWidth:  16,
		triggerHeight: 1,
	}
	m.splitter = components.NewSplitter(
		components.NewText("left pane"),
		components.NewText("right pane"),
	)

	return m
}

// Init schedules the first animation frame and any celebration due
// today.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{frameTickCmd()}
	if m.cfg.Occasions.IsEnabled() {
		if occ, ok := m.occasions.Current(m.now()); ok {
			cmds = append(cmds, celebrateCmd(occ))
		}
	}
	return tea.Batch(cmds...)
}

// Celebrating reports whether confetti is on screen.
func (m Model) Celebrating() bool {
	return m.confetti != nil && !m.confetti.Done()
}

// TooltipSnapshot exposes the tooltip controller state, mainly for
// the footer and tests.
func (m Model) TooltipSnapshot() popover.Snapshot {
	return m.tooltip.Snapshot()
}

func (m *Model) layout() {
	// The demo trigger sits roughly mid-screen so every placement has
	// room to resolve.
	m.triggerTop = m.height / 2
	m.triggerLeft = (m.width - m.triggerWidth) / 2
	if m.triggerLeft < 0 {
		m.triggerLeft = 0
	}
	m.tooltip.SetViewportSize(m.width, m.height)
	m.tooltip.SetTriggerRect(m.triggerTop, m.triggerLeft, m.triggerWidth, m.triggerHeight)
	m.splitter.WithSize(m.width-4, m.height-6)
	if m.confetti != nil {
		m.confetti.Resize(m.width, m.height)
	}
}

func (m Model) overTrigger(x, y int) bool {
	return m.page == PageTooltip &&
		y >= m.triggerTop && y < m.triggerTop+m.triggerHeight &&
		x >= m.triggerLeft && x < m.triggerLeft+m.triggerWidth
}
