// Package ui provides consistent styling and components for the gamepanel CLI
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - consistent across the application
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("39")  // Bright blue
	ColorSecondary = lipgloss.Color("205") // Pink/magenta
	ColorSuccess   = lipgloss.Color("82")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorInfo      = lipgloss.Color("86")  // Cyan

	// Neutral colors
	ColorText   = lipgloss.Color("252") // Light gray
	ColorSubtle = lipgloss.Color("241") // Medium gray
	ColorMuted  = lipgloss.Color("238") // Dark gray

	// Button colors
	ColorPressed  = ColorSuccess
	ColorReleased = ColorMuted
)

var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorMuted).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSubtle).
			Padding(1, 2)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	KeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// Button cells in the monitor grid
	PressedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPressed).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPressed).
			Padding(0, 1)

	ReleasedStyle = lipgloss.NewStyle().
			Foreground(ColorReleased).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorReleased).
			Padding(0, 1)
)

var (
	ConnectedIndicator = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Render("●")

	DisconnectedIndicator = lipgloss.NewStyle().
				Foreground(ColorError).
				Render("○")
)

// Icons used across commands
var (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconProbe   = "»"
	IconSteps   = "→"
)

func FormatStatus(connected bool, status string) string {
	indicator := DisconnectedIndicator
	if connected {
		indicator = ConnectedIndicator
	}
	return indicator + " " + status
}

// FormatKeyValue renders one "key: value" row of a report.
func FormatKeyValue(key, value string) string {
	return KeyStyle.Render(key+":") + " " + TextStyle.Render(value)
}

// FormatHeader renders a command header followed by a separator.
func FormatHeader(title string) string {
	coloredIcon := InfoStyle.Render(IconProbe)
	header := HeaderStyle.UnsetMarginBottom().Render(coloredIcon + " " + title)
	return header + "\n" + CreateSeparator(50, "─")
}

func FormatResult(success bool, step, message string) string {
	var coloredIcon string
	var style lipgloss.Style

	if success {
		coloredIcon = SuccessStyle.Render(IconSuccess)
		style = SuccessStyle
	} else {
		coloredIcon = ErrorStyle.Render(IconError)
		style = ErrorStyle
	}

	result := "   " + coloredIcon + " " + step
	if message != "" {
		result += " - " + style.Render(message)
	}
	return result
}

// FormatButton renders a single button cell.
func FormatButton(name string, pressed bool) string {
	if pressed {
		return PressedStyle.Render(name)
	}
	return ReleasedStyle.Render(name)
}

// CreateSeparator creates a horizontal line separator
func CreateSeparator(width int, char string) string {
	if width <= 0 {
		width = 50
	}
	if char == "" {
		char = "─"
	}

	return lipgloss.NewStyle().
		Foreground(ColorSubtle).
		Render(strings.Repeat(char, width))
}
