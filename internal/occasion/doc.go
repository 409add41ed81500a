// Package occasion decides when the gallery celebrates and renders the
// celebration. A registry of date rules (fixed days, day ranges, nth
// weekdays) maps the current date to a named occasion and its palette;
// a deterministic confetti field turns that palette into an animated
// terminal overlay.
package occasion
