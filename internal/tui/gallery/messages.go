package gallery

import (
	"time"
)

// Page determines which component demo to render
type Page int

const (
	PageBadges Page = iota
	PageInputs
	PageRating
	PageSplitter
	PageTooltip
	PageUpload
	pageCount
)

func (p Page) String() string {
	switch p {
	case PageBadges:
		return "Badges"
	case PageInputs:
		return "Inputs"
	case PageRating:
		return "Rating"
	case PageSplitter:
		return "Splitter"
	case PageTooltip:
		return "Tooltip"
	case PageUpload:
		return "Upload"
	default:
		return "Unknown"
	}
}

// FrameTickMsg drives the animation loop while anything on screen is
// animating.
type FrameTickMsg struct {
	Time time.Time
}

// CelebrationMsg starts the confetti overlay for a named occasion.
type CelebrationMsg struct {
	Name   string
	Colors []string
}

// UploadProgressMsg reports simulated transfer progress for a queued
// file.
type UploadProgressMsg struct {
	Path  string
	Ratio float64
}
