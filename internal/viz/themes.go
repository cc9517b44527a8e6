package viz

import "github.com/charmbracelet/lipgloss"

// Theme maps ink classes to terminal colors. Near/Mid/Far are the
// depth bands; Accent marks geometry under the pointer.
type Theme struct {
	Name string

	Near    lipgloss.Color
	Mid     lipgloss.Color
	Far     lipgloss.Color
	Link    lipgloss.Color
	LinkDim lipgloss.Color
	Accent  lipgloss.Color

	// HUD styling for the live view.
	HUDLabel lipgloss.Style
	HUDValue lipgloss.Style
}

var (
	ThemeMidnight = Theme{
		Name:     "midnight",
		Near:     lipgloss.Color("#9ecbff"),
		Mid:      lipgloss.Color("#5f87d7"),
		Far:      lipgloss.Color("#3a4a7a"),
		Link:     lipgloss.Color("#44608a"),
		LinkDim:  lipgloss.Color("#2a3a55"),
		Accent:   lipgloss.Color("#7fffd4"),
		HUDLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("#666688")),
		HUDValue: lipgloss.NewStyle().Foreground(lipgloss.Color("#9ecbff")).Bold(true),
	}

	ThemeEmber = Theme{
		Name:     "ember",
		Near:     lipgloss.Color("#ffcc88"),
		Mid:      lipgloss.Color("#d7875f"),
		Far:      lipgloss.Color("#7a4a3a"),
		Link:     lipgloss.Color("#8a6044"),
		LinkDim:  lipgloss.Color("#55382a"),
		Accent:   lipgloss.Color("#ffff88"),
		HUDLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("#886666")),
		HUDValue: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc88")).Bold(true),
	}

	ThemeMono = Theme{
		Name:     "mono",
		Near:     lipgloss.Color("255"),
		Mid:      lipgloss.Color("250"),
		Far:      lipgloss.Color("240"),
		Link:     lipgloss.Color("244"),
		LinkDim:  lipgloss.Color("236"),
		Accent:   lipgloss.Color("231"),
		HUDLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		HUDValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	}
)

var Themes = map[string]Theme{
	"midnight": ThemeMidnight,
	"ember":    ThemeEmber,
	"mono":     ThemeMono,
}

// GetTheme falls back to midnight for unknown names.
func GetTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return ThemeMidnight
}

// ColorFor returns the raw theme color for an ink class; the zero
// value means unstyled.
func (t Theme) ColorFor(ink Ink) lipgloss.Color {
	switch ink {
	case InkNear:
		return t.Near
	case InkMid:
		return t.Mid
	case InkFar:
		return t.Far
	case InkLink:
		return t.Link
	case InkLinkDim:
		return t.LinkDim
	case InkAccent:
		return t.Accent
	}
	return lipgloss.Color("")
}

// Style returns the render style for an ink class.
func (t Theme) Style(ink Ink) lipgloss.Style {
	c := t.ColorFor(ink)
	if c == lipgloss.Color("") {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c)
}
