// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ux provides terminal output styling for the submission-engine CLI.
package ux

import "github.com/charmbracelet/lipgloss"

// The palette sticks to the basic ANSI range so output degrades cleanly on
// plain terminals and in piped output.
var (
	ColorMuted = lipgloss.Color("8") // bright black, for labels and separators
	ColorError = lipgloss.Color("9") // bright red, for diagnostics
)

// Styles provides the pre-configured lipgloss styles used by the commands.
var Styles = struct {
	Muted lipgloss.Style
	Error lipgloss.Style
}{
	Muted: lipgloss.NewStyle().Foreground(ColorMuted),
	Error: lipgloss.NewStyle().Foreground(ColorError),
}
