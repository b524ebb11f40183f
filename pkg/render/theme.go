package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the styles applied to a boxed report on a terminal.
type Theme struct {
	Name    string
	Border  lipgloss.Style // rules and column borders
	Title   lipgloss.Style
	Heading lipgloss.Style
	Word    lipgloss.Style // ranked words column
	Stat    lipgloss.Style // statistics column
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Heading: lipgloss.NewStyle().Bold(true),
		Word:    lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Stat:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name:    "orca",
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // lighter gray
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		Heading: lipgloss.NewStyle().Bold(true),
		Word:    lipgloss.NewStyle().Foreground(lipgloss.Color("108")), // sage green
		Stat:    lipgloss.NewStyle().Foreground(lipgloss.Color("179")), // muted gold
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Border:  lipgloss.NewStyle(),
		Title:   lipgloss.NewStyle().Bold(true),
		Heading: lipgloss.NewStyle(),
		Word:    lipgloss.NewStyle(),
		Stat:    lipgloss.NewStyle(),
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}

// ThemeNames lists the names ThemeByName recognises.
func ThemeNames() []string {
	return []string{"default", "orca", "mono"}
}
