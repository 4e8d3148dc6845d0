package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/khrees2412/talentdesk/internal/view"
)

func itoa(n int) string { return strconv.Itoa(n) }

// Table lays rows out in padded columns under an underlined header.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := range headers {
			if i < len(row) {
				if w := lipgloss.Width(row[i]); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	var b strings.Builder
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = headerStyle.Render(pad(h, widths[i]))
	}
	b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
	b.WriteString("\n")
	for _, row := range rows {
		for i := range headers {
			v := ""
			if i < len(row) {
				v = row[i]
			}
			cells[i] = pad(v, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// SortHeader marks the active sort column with an arrow.
func SortHeader(name string, active, desc bool) string {
	if !active {
		return name
	}
	if desc {
		return name + " ↓"
	}
	return name + " ↑"
}

// Pager renders "Page 2 of 5 (72 total)".
func Pager(page, pages, total int) string {
	return MutedStyle.Render(fmt.Sprintf("Page %d of %d (%d total)", page, pages, total))
}

// Bullets renders one "• item" per line, or a dash when empty.
func Bullets(items []string) string {
	if len(items) == 0 {
		return MutedStyle.Render("  -")
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString("  • ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Gauge draws a 0 to 100 score as a bar coloured in thirds.
func Gauge(score, width int) string {
	if width < 3 {
		width = 3
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score * width / 100
	segment := []lipgloss.Color{"9", "11", "10"}
	var b strings.Builder
	for i := 0; i < width; i++ {
		color := segment[i*3/width]
		ch := "░"
		if i < filled {
			ch = "█"
		}
		b.WriteString(lipgloss.NewStyle().Foreground(color).Render(ch))
	}
	return b.String() + " " + itoa(score) + "%"
}

// Notifications renders the active toasts, success first.
func Notifications(notes []view.Notification) string {
	var lines []string
	for _, n := range notes {
		switch n.Severity {
		case view.SeveritySuccess:
			lines = append(lines, SuccessStyle.Render("✓ "+n.Message))
		case view.SeverityError:
			lines = append(lines, ErrorStyle.Render("✗ "+n.Message))
		}
	}
	return strings.Join(lines, "\n")
}

// Calendar draws a Monday-first month grid, highlighting days in marked.
func Calendar(year int, month time.Month, marked map[int]int, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	days := first.AddDate(0, 1, -1).Day()
	offset := (int(first.Weekday()) + 6) % 7

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %d\n", month, year))
	b.WriteString("Mo Tu We Th Fr Sa Su\n")
	col := 0
	for i := 0; i < offset; i++ {
		b.WriteString("   ")
		col++
	}
	for d := 1; d <= days; d++ {
		cell := fmt.Sprintf("%2d", d)
		if marked[d] > 0 {
			cell = markedDayStyle.Render(cell)
		}
		b.WriteString(cell)
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		} else if d < days {
			b.WriteString(" ")
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	return b.String()
}
