package gallery

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glintui/glint/internal/occasion"
)

const frameInterval = time.Second / 30

// frameTickCmd schedules the next animation frame.
func frameTickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameTickMsg{Time: t}
	})
}

// celebrateCmd announces an active occasion.
func celebrateCmd(occ occasion.Occasion) tea.Cmd {
	return func() tea.Msg {
		return CelebrationMsg{Name: occ.Name, Colors: occ.Colors}
	}
}

// uploadProgressCmd simulates transfer progress for a picked file.
func uploadProgressCmd(path string, ratio float64) tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return UploadProgressMsg{Path: path, Ratio: ratio}
	})
}
