package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Panel       lipgloss.Style
	Title       lipgloss.Style
	Subtle      lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Selected    lipgloss.Style
	KeyHint     lipgloss.Style
	CloudStyle  lipgloss.Style
	MarkerStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
)

func init() {
	applyTheme(CurrentTheme)
}

func applyTheme(t Theme) {
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Muted).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	Subtle = lipgloss.NewStyle().Foreground(t.Muted)

	Label = lipgloss.NewStyle().
		Foreground(t.Muted).
		Width(22)

	Value = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	Selected = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	KeyHint = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)

	CloudStyle = lipgloss.NewStyle().
		Foreground(t.Cloud).
		Bold(true)

	MarkerStyle = lipgloss.NewStyle().Foreground(t.Secondary)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)
}

// BoxWithTitle renders content in a rounded panel headed by title.
func BoxWithTitle(title, content string) string {
	return Panel.Render(Title.Render(title) + "\n" + content)
}

// Separator renders a muted horizontal rule.
func Separator(width int) string {
	if width < 7 {
		return Subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}
