// Package ui provides shared lipgloss styles for CLI output.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#6B7280") // Gray
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorDanger    = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#9CA3AF") // Light gray
	ColorBlue      = lipgloss.Color("#3B82F6") // Blue
)

// NamedColors maps display color names to lipgloss colors.
var NamedColors = map[string]lipgloss.Color{
	"green":  ColorSuccess,
	"yellow": ColorWarning,
	"red":    ColorDanger,
	"gray":   ColorSecondary,
	"grey":   ColorSecondary,
	"blue":   ColorBlue,
	"purple": ColorPrimary,
}

// ResolveColor converts a display color name or hex code to a lipgloss.Color.
func ResolveColor(color string) lipgloss.Color {
	if strings.HasPrefix(color, "#") {
		return lipgloss.Color(color)
	}
	if c, ok := NamedColors[strings.ToLower(color)]; ok {
		return c
	}
	return ColorMuted
}

// Common text styles
var (
	Success = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	Danger  = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
	Muted   = lipgloss.NewStyle().Foreground(ColorMuted)
	ID      = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	Header  = lipgloss.NewStyle().Foreground(ColorMuted)
)

// RenderCoatColor renders a cat's coat color name in its configured
// display color.
func RenderCoatColor(name, display string) string {
	return lipgloss.NewStyle().Foreground(ResolveColor(display)).Render(name)
}
