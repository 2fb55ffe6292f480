package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds resolved lipgloss styles for command output.
type Theme struct {
	Header lipgloss.Style
	Value  lipgloss.Style
	Muted  lipgloss.Style
	Today  lipgloss.Style
}

// Built-in presets.
var presets = map[string]Theme{
	"default-dark": {
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Today:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
	},
	"default-light": {
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")),
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Today:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27")),
	},
}

// ResolveTheme returns the named preset, falling back to default-dark for an
// unknown name.
func ResolveTheme(name string) Theme {
	if theme, ok := presets[name]; ok {
		return theme
	}
	return presets["default-dark"]
}
