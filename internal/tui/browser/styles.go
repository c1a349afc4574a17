// ============================================================================
// CCL - Categorized Configuration Language
// ============================================================================
//
// Package:     browser
// Description: Styles for the CCL document browser TUI
// Author:      Mike Stoffels with Claude
// Created:     2025-08-18
// License:     MIT
// ============================================================================

package browser

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray

	// Text colors
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400

	// Value type colors
	ColorBoolean = lipgloss.Color("#F59E0B") // Amber
	ColorNumber  = lipgloss.Color("#06B6D4") // Cyan
	ColorString  = lipgloss.Color("#10B981") // Emerald
	ColorArray   = lipgloss.Color("#8B5CF6") // Violet
)

// Layout styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true).
			Padding(0, 1)

	ListStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	ContentStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	VariableNameStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true)

	PositionStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)
)

// Value styles by type
var (
	BooleanStyle = lipgloss.NewStyle().Foreground(ColorBoolean)
	NumberStyle  = lipgloss.NewStyle().Foreground(ColorNumber)
	StringStyle  = lipgloss.NewStyle().Foreground(ColorString)
	ArrayStyle   = lipgloss.NewStyle().Foreground(ColorArray)
)
