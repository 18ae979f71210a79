// Package styles holds the lipgloss styles used for human-readable output
package styles

import (
	"charm.land/lipgloss/v2"
)

const (
	accent  = "#7D56F4"
	subtle  = "#888888"
	normal  = "#DDDDDD"
	errorBg = "#D7263D"
	infoBg  = "#2E8B57"
	warnBg  = "#E6A23C"
	onColor = "#FFFFFF"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Start:"
	ValueStyle    lipgloss.Style // For field values

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(accent)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(accent))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(normal))

	SuccessStyle = badge(infoBg)
	ErrorStyle = badge(errorBg)
	WarningStyle = badge(warnBg)
}

func badge(bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(onColor)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1)
}

// Field renders "Label: value"
func Field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
