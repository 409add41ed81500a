package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// PlaceOverlay paints the panel string onto the base frame with the
// panel's top-left corner at (top, left), measured in cells. It is the
// terminal equivalent of rendering into a detached overlay layer:
// base rows outside the panel are untouched, and splicing is
// ANSI-sequence aware so styled frames survive the cut.
func PlaceOverlay(base, panel string, top, left int) string {
	if panel == "" {
		return base
	}

	baseLines := strings.Split(base, "\n")
	panelLines := strings.Split(panel, "\n")

	for i, panelLine := range panelLines {
		row := top + i
		if row < 0 {
			continue
		}
		// Extend the frame downward if the panel hangs past it.
		for row >= len(baseLines) {
			baseLines = append(baseLines, "")
		}
		baseLines[row] = spliceLine(baseLines[row], panelLine, left)
	}

	return strings.Join(baseLines, "\n")
}

// spliceLine overwrites the cells of line starting at column col with
// overlay, preserving the cells on either side.
func spliceLine(line, overlay string, col int) string {
	if col < 0 {
		col = 0
	}
	overlayWidth := ansi.StringWidth(overlay)
	if overlayWidth == 0 {
		return line
	}
	lineWidth := ansi.StringWidth(line)

	left := ansi.Truncate(line, col, "")
	if pad := col - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}

	right := ""
	if lineWidth > col+overlayWidth {
		right = ansi.TruncateLeft(line, col+overlayWidth, "")
	}

	return left + overlay + right
}
