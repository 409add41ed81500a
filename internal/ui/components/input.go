package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Input is a single-line text field with a label, optional help and
// error text, and themed default/focus/error/disabled states. The
// editing behavior is delegated to bubbles' textinput model.
type Input struct {
	BaseComponent
	model    textinput.Model
	label    string
	help     string
	errText  string
	disabled bool
	width    int
}

// NewInput creates a new input with the given placeholder text.
func NewInput(placeholder string) *Input {
	m := textinput.New()
	m.Placeholder = placeholder
	m.Prompt = ""

	return &Input{
		BaseComponent: NewBaseComponent(),
		model:         m,
		width:         30,
	}
}

// Update forwards host messages to the embedded text model. Disabled
// inputs swallow all input events.
func (i *Input) Update(msg tea.Msg) tea.Cmd {
	if i.disabled {
		return nil
	}
	var cmd tea.Cmd
	i.model, cmd = i.model.Update(msg)
	return cmd
}

// Focus gives the input keyboard focus.
func (i *Input) Focus() tea.Cmd {
	if i.disabled {
		return nil
	}
	return i.model.Focus()
}

// Blur removes keyboard focus.
func (i *Input) Blur() {
	i.model.Blur()
}

// Focused reports whether the input has keyboard focus.
func (i *Input) Focused() bool {
	return i.model.Focused()
}

// Value returns the current text.
func (i *Input) Value() string {
	return i.model.Value()
}

// SetValue replaces the current text.
func (i *Input) SetValue(value string) *Input {
	i.model.SetValue(value)
	return i
}

// View renders the input.
func (i *Input) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the input with the given theme context.
func (i *Input) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	i.model.Width = i.width
	field := InputStyle(theme, i.state()).Render(i.model.View())

	parts := make([]string, 0, 3)
	if i.label != "" {
		parts = append(parts, theme.Input.Label.Render(i.label))
	}
	parts = append(parts, field)
	switch {
	case i.errText != "":
		errStyle := lipgloss.NewStyle().Foreground(theme.Palette.Danger.Base)
		parts = append(parts, errStyle.Render(i.errText))
	case i.help != "":
		parts = append(parts, theme.Input.Help.Render(i.help))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return i.ComputeStyle(theme).Render(content)
}

func (i *Input) state() InputState {
	switch {
	case i.disabled:
		return InputStateDisabled
	case i.errText != "":
		return InputStateError
	case i.model.Focused():
		return InputStateFocus
	default:
		return InputStateDefault
	}
}

// WithLabel sets the label rendered above the field.
func (i *Input) WithLabel(label string) *Input {
	i.label = label
	return i
}

// WithHelp sets the help text rendered below the field. Error text
// takes precedence when both are set.
func (i *Input) WithHelp(help string) *Input {
	i.help = help
	return i
}

// WithError sets the error text and switches the field to its error
// state. An empty string clears it.
func (i *Input) WithError(err string) *Input {
	i.errText = err
	return i
}

// WithDisabled toggles the disabled state.
func (i *Input) WithDisabled(disabled bool) *Input {
	i.disabled = disabled
	if disabled {
		i.model.Blur()
	}
	return i
}

// WithWidth sets the field width in cells.
func (i *Input) WithWidth(width int) *Input {
	if width > 0 {
		i.width = width
	}
	return i
}

// WithCharLimit caps the number of characters the field accepts.
func (i *Input) WithCharLimit(limit int) *Input {
	i.model.CharLimit = limit
	return i
}

// WithAppliers applies theme-based style modifiers to the wrapper.
func (i *Input) WithAppliers(appliers ...StyleFunc) *Input {
	i.AddAppliers(appliers...)
	return i
}

// Disabled reports the disabled state.
func (i *Input) Disabled() bool {
	return i.disabled
}
