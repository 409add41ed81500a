package components

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// UploadFile is one entry in an upload queue.
type UploadFile struct {
	Path     string
	Progress float64
	Err      error
}

// Done reports whether the transfer completed without error.
func (f UploadFile) Done() bool {
	return f.Err == nil && f.Progress >= 1
}

// Upload lets the user pick files from disk and tracks per-file
// transfer progress. Browsing is handled by the bubbles file picker;
// the component itself only queues selections, the owner drives the
// actual transfer and reports progress back via SetProgress.
type Upload struct {
	BaseComponent
	picker   filepicker.Model
	bar      progress.Model
	files    []UploadFile
	maxFiles int
	browsing bool
	width    int
}

// NewUpload creates an upload component rooted at the current
// directory.
func NewUpload() *Upload {
	picker := filepicker.New()
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 24
	return &Upload{
		BaseComponent: NewBaseComponent(),
		picker:        picker,
		bar:           bar,
		width:         48,
	}
}

// WithAllowedTypes restricts selection to the given extensions.
func (u *Upload) WithAllowedTypes(exts ...string) *Upload {
	u.picker.AllowedTypes = exts
	return u
}

// WithDirectory sets the directory the picker opens in.
func (u *Upload) WithDirectory(dir string) *Upload {
	u.picker.CurrentDirectory = dir
	return u
}

// WithMaxFiles caps the queue length. Zero means unlimited.
func (u *Upload) WithMaxFiles(n int) *Upload {
	u.maxFiles = n
	return u
}

// WithWidth sets the rendered width.
func (u *Upload) WithWidth(width int) *Upload {
	u.width = width
	return u
}

// Init boots the file picker.
func (u *Upload) Init() tea.Cmd {
	return u.picker.Init()
}

// Browsing reports whether the picker is open.
func (u *Upload) Browsing() bool {
	return u.browsing
}

// OpenPicker shows the file picker. Returns a command that reloads
// the current directory.
func (u *Upload) OpenPicker() tea.Cmd {
	if u.maxFiles > 0 && len(u.files) >= u.maxFiles {
		return nil
	}
	u.browsing = true
	return u.picker.Init()
}

// Update routes messages to the picker while browsing and queues any
// confirmed selection.
func (u *Upload) Update(msg tea.Msg) tea.Cmd {
	if !u.browsing {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		u.browsing = false
		return nil
	}
	var cmd tea.Cmd
	u.picker, cmd = u.picker.Update(msg)
	if ok, path := u.picker.DidSelectFile(msg); ok {
		u.add(path)
		u.browsing = false
	}
	return cmd
}

func (u *Upload) add(path string) {
	if u.maxFiles > 0 && len(u.files) >= u.maxFiles {
		return
	}
	for _, f := range u.files {
		if f.Path == path {
			return
		}
	}
	u.files = append(u.files, UploadFile{Path: path})
}

// SetProgress records transfer progress for a queued file. The ratio
// is clamped to [0, 1].
func (u *Upload) SetProgress(path string, ratio float64) {
	for i := range u.files {
		if u.files[i].Path == path {
			u.files[i].Progress = math.Min(1, math.Max(0, ratio))
			return
		}
	}
}

// Fail marks a queued file's transfer as failed.
func (u *Upload) Fail(path string, err error) {
	for i := range u.files {
		if u.files[i].Path == path {
			u.files[i].Err = err
			return
		}
	}
}

// Remove drops a file from the queue.
func (u *Upload) Remove(path string) {
	for i, f := range u.files {
		if f.Path == path {
			u.files = append(u.files[:i], u.files[i+1:]...)
			return
		}
	}
}

// Files returns a copy of the queue.
func (u *Upload) Files() []UploadFile {
	out := make([]UploadFile, len(u.files))
	copy(out, u.files)
	return out
}

// View renders with the default theme.
func (u *Upload) View() string {
	return u.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the picker while browsing, otherwise the
// queued files with their progress bars.
func (u *Upload) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	if u.browsing {
		return u.picker.View()
	}
	if len(u.files) == 0 {
		return theme.Input.Help.Render("no files selected")
	}
	rows := make([]string, 0, len(u.files))
	for _, f := range u.files {
		rows = append(rows, u.renderFile(theme, f))
	}
	list := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return u.ComputeStyle(theme).Render(list)
}

func (u *Upload) renderFile(theme Theme, f UploadFile) string {
	name := theme.Typography.Body.Render(filepath.Base(f.Path))
	switch {
	case f.Err != nil:
		status := theme.Input.Error.Render(fmt.Sprintf("failed: %v", f.Err))
		return lipgloss.JoinHorizontal(lipgloss.Left, name, "  ", status)
	case f.Done():
		status := theme.Typography.Faint.Render("done")
		return lipgloss.JoinHorizontal(lipgloss.Left, name, "  ", status)
	default:
		return lipgloss.JoinHorizontal(lipgloss.Left, name, "  ", u.bar.ViewAs(f.Progress))
	}
}
