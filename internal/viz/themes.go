package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour scheme of panels and charts.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Cloud     lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

var (
	ThemeSky = Theme{
		Name:      "sky",
		Primary:   lipgloss.Color("#4fb3ff"),
		Secondary: lipgloss.Color("#9ad7ff"),
		Accent:    lipgloss.Color("#ffd166"),
		Text:      lipgloss.Color("#f0f6ff"),
		Muted:     lipgloss.Color("#6b7f99"),
		Cloud:     lipgloss.Color("#e8e8e8"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#ff4d4d"),
	}

	ThemeNight = Theme{
		Name:      "night",
		Primary:   lipgloss.Color("#b48eff"),
		Secondary: lipgloss.Color("#7aa2f7"),
		Accent:    lipgloss.Color("#e0af68"),
		Text:      lipgloss.Color("#c0caf5"),
		Muted:     lipgloss.Color("#565f89"),
		Cloud:     lipgloss.Color("#a9b1d6"),
		Warning:   lipgloss.Color("#ff9e64"),
		Error:     lipgloss.Color("#f7768e"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Cloud:     lipgloss.Color("#dddddd"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#ff0000"),
	}

	CurrentTheme = ThemeSky

	Themes = []Theme{ThemeSky, ThemeNight, ThemeMinimal}
)

// GetTheme returns a theme by name, falling back to the sky theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSky
}

// SetTheme changes the current theme and restyles the shared styles.
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
	applyTheme(CurrentTheme)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
