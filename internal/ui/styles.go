// Package ui renders console output with lipgloss.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/khrees2412/talentdesk/pkg/models"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	markedDayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("12"))
)

var bandColors = map[models.ScoreBand]lipgloss.Color{
	models.BandGood: lipgloss.Color("10"),
	models.BandFair: lipgloss.Color("214"),
	models.BandPoor: lipgloss.Color("9"),
}

// Title renders a screen heading.
func Title(s string) string { return TitleStyle.Render(s) }

// Label renders a field label.
func Label(s string) string { return LabelStyle.Render(s) }

// Field renders "Label: value".
func Field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// Score colours a fitment score by band.
func Score(score int) string {
	return lipgloss.NewStyle().
		Foreground(bandColors[models.BandFor(score)]).
		Render(itoa(score))
}

// TitleCase capitalises each word, e.g. for roles stored in lower case.
func TitleCase(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}

// Active renders the job status flag.
func Active(active bool) string {
	if active {
		return SuccessStyle.Render("active")
	}
	return MutedStyle.Render("inactive")
}
