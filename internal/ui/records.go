package ui

import (
	"strconv"
	"strings"

	"github.com/khrees2412/talentdesk/pkg/models"
)

// UserProfile renders the candidate detail block.
func UserProfile(up models.UserProfile) string {
	var b strings.Builder
	line := func(s string) { b.WriteString(s + "\n") }

	line(Label(up.Account.FullName()))
	if up.Profile.JobRole != "" {
		line(up.Profile.JobRole)
	}
	line(Field("Email", up.Account.Email))
	line(Field("Phone", up.Account.Phone))
	line(Field("Role", TitleCase(up.Account.Role)))
	years := "Not stated"
	if y := models.LongevityYears(up.Profile.LongevityDays); y > 0 {
		years = strconv.Itoa(y) + " years"
	}
	line(Field("Experience", years))
	line(Field("Fitment", Gauge(up.Profile.Score, 30)))
	if up.Profile.Bio != "" {
		line(Label("\nAbout"))
		line(up.Profile.Bio)
	}
	if up.Profile.Education != "" {
		line(Field("Education", up.Profile.Education))
	}
	line(Label("\nWork history"))
	b.WriteString(Bullets(models.Bullets(up.Profile.Experience)))
	return b.String()
}

// JobDetail renders a posting with its description and requirement bullets.
func JobDetail(j models.Job) string {
	var b strings.Builder
	b.WriteString(Label(j.Name) + "  " + Active(j.IsActive) + "\n")
	b.WriteString(Label("\nDescription") + "\n")
	b.WriteString(Bullets(j.DescriptionBullets()) + "\n")
	b.WriteString(Label("\nRequirements") + "\n")
	b.WriteString(Bullets(j.RequirementBullets()))
	return b.String()
}
