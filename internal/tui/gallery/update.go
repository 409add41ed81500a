package gallery

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glintui/glint/internal/occasion"
)

// Update routes messages to the active page and the animation loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case FrameTickMsg:
		if m.confetti != nil {
			m.confetti.Step()
			if m.confetti.Done() {
				m.confetti = nil
				m.occasionName = ""
			}
		}
		return m, frameTickCmd()

	case CelebrationMsg:
		m.log.WithFields(map[string]any{"occasion": msg.Name}).Info("starting celebration")
		seed := m.cfg.Occasions.Seed
		if seed == 0 {
			seed = m.now().Unix() / 86400
		}
		m.confetti = occasion.NewField(m.width, m.height, seed, msg.Colors)
		m.confetti.Spawn(m.width)
		m.occasionName = msg.Name
		return m, nil

	case UploadProgressMsg:
		m.upload.SetProgress(msg.Path, msg.Ratio)
		if msg.Ratio < 1 {
			return m, uploadProgressCmd(msg.Path, msg.Ratio+0.1)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.tooltip.Unmount()
		return m, tea.Quit
	case "q":
		if m.page == PageInputs && m.input.Focused() {
			break
		}
		m.tooltip.Unmount()
		return m, tea.Quit
	case "tab":
		return m.switchPage((m.page + 1) % pageCount)
	case "shift+tab":
		return m.switchPage((m.page + pageCount - 1) % pageCount)
	}

	switch m.page {
	case PageBadges:
		if msg.String() == "+" {
			m.counterClicks++
			m.counter.SetCount(m.counterClicks)
		}
		return m, nil
	case PageInputs:
		return m, m.input.Update(msg)
	case PageRating:
		return m, m.rating.Update(msg)
	case PageSplitter:
		return m, m.splitter.Update(msg)
	case PageTooltip:
		switch msg.String() {
		case " ", "enter":
			m.tooltip.Click()
		case "f":
			m.tooltip.Focus()
		case "g":
			m.tooltip.Blur()
		}
		return m, nil
	case PageUpload:
		if msg.String() == "o" && !m.upload.Browsing() {
			return m, m.upload.OpenPicker()
		}
		before := len(m.upload.Files())
		cmd := m.upload.Update(msg)
		files := m.upload.Files()
		if len(files) > before {
			picked := files[len(files)-1]
			return m, tea.Batch(cmd, uploadProgressCmd(picked.Path, 0.1))
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	over := m.overTrigger(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		if over && !m.pointerOver {
			m.tooltip.PointerEnter()
		} else if !over && m.pointerOver {
			m.tooltip.PointerLeave()
		}
		m.pointerOver = over
	case tea.MouseActionPress:
		if over && msg.Button == tea.MouseButtonLeft {
			m.tooltip.Click()
		}
	}

	return m, nil
}

func (m Model) switchPage(page Page) (tea.Model, tea.Cmd) {
	if m.pointerOver {
		m.tooltip.PointerLeave()
		m.pointerOver = false
	}
	m.input.Blur()
	m.rating.Blur()
	m.splitter.Blur()

	m.page = page

	var cmd tea.Cmd
	switch page {
	case PageInputs:
		cmd = m.input.Focus()
	case PageRating:
		m.rating.Focus()
	case PageSplitter:
		m.splitter.Focus()
	case PageTooltip:
		m.layout()
	}
	return m, cmd
}
