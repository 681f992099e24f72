// Package ui is the full-screen terminal front end: an input box, a Run
// button, the report pane and a footer with the runtime.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
	Warning    lipgloss.Color
	IsDark     bool
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#f2f2f2"),
		Primary:    lipgloss.Color("#f7df1e"),
		Muted:      lipgloss.Color("#6b7280"),
		Border:     lipgloss.Color("#2a3850"),
		Error:      lipgloss.Color("#e53935"),
		Warning:    lipgloss.Color("#FFC107"),
		IsDark:     true,
	}
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#101F38"),
		Primary:    lipgloss.Color("#8a6d00"),
		Muted:      lipgloss.Color("#9ca3af"),
		Border:     lipgloss.Color("#dce0e5"),
		Error:      lipgloss.Color("#c62828"),
		Warning:    lipgloss.Color("#b26a00"),
		IsDark:     false,
	}
}

// ThemeByName maps the config's ui.theme to a Theme; unknown names get the
// dark theme
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles are the lipgloss styles derived from a theme
type Styles struct {
	Header         lipgloss.Style
	Example        lipgloss.Style
	Mismatch       lipgloss.Style
	Error          lipgloss.Style
	Input          lipgloss.Style
	Output         lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Footer         lipgloss.Style
}

// NewStyles builds the styles for a theme
func NewStyles(t Theme) Styles {
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Example:  lipgloss.NewStyle().Foreground(t.Foreground),
		Mismatch: lipgloss.NewStyle().Foreground(t.Warning),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Input:    pane,
		Output:   pane,
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(t.Primary).
			Padding(0, 2),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(t.Muted).
			Background(t.Border).
			Padding(0, 2),
		Footer: lipgloss.NewStyle().Foreground(t.Muted),
	}
}
