package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name          string
	Border        lipgloss.Color
	Header        lipgloss.Style
	Fruit         lipgloss.Style
	Calyx         lipgloss.Style
	Button        lipgloss.Style
	ButtonActive  lipgloss.Style
	ButtonFocused lipgloss.Style
	Label         lipgloss.Style
	Input         lipgloss.Style
	Popover       lipgloss.Style
	Focused       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Error         lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Border:        lipgloss.Color("208"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Fruit:         lipgloss.NewStyle().Foreground(lipgloss.Color("202")),
		Calyx:         lipgloss.NewStyle().Foreground(lipgloss.Color("70")),
		Button:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		ButtonActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("208")).Bold(true).Padding(0, 1),
		ButtonFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Underline(true).Padding(0, 1),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Italic(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("208")).Padding(0, 1),
		Popover:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("70")).Padding(0, 1),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("70")).Bold(true),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	},
	"dracula": {
		Name:          "Dracula",
		Border:        lipgloss.Color("62"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Fruit:         lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
		Calyx:         lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Button:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Padding(0, 1),
		ButtonActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("212")).Bold(true).Padding(0, 1),
		ButtonFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Underline(true).Padding(0, 1),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Italic(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Popover:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("141")).Padding(0, 1),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),             // Comment
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true), // Green
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // Red
	},
	"mono": {
		Name:          "Mono",
		Border:        lipgloss.Color("245"),
		Header:        lipgloss.NewStyle().Bold(true),
		Fruit:         lipgloss.NewStyle(),
		Calyx:         lipgloss.NewStyle().Faint(true),
		Button:        lipgloss.NewStyle().Padding(0, 1),
		ButtonActive:  lipgloss.NewStyle().Reverse(true).Padding(0, 1),
		ButtonFocused: lipgloss.NewStyle().Underline(true).Padding(0, 1),
		Label:         lipgloss.NewStyle().Italic(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		Popover:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		Focused:       lipgloss.NewStyle().Bold(true),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Bold(true),
		Error:         lipgloss.NewStyle().Bold(true).Underline(true),
	},
}

// ThemeNames lists the available themes in a stable order.
var ThemeNames = []string{"default", "dracula", "mono"}

// ResolveTheme returns the named theme, falling back to the default.
func ResolveTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
