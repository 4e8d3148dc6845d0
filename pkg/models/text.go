package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Bullets splits newline-delimited text into trimmed, non-empty lines
func Bullets(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// ScoreBand classifies a fitment score for colouring
type ScoreBand string

const (
	BandGood ScoreBand = "good"
	BandFair ScoreBand = "fair"
	BandPoor ScoreBand = "poor"
)

// BandFor maps a score to its band: above 80 good, 60 and up fair, the rest poor
func BandFor(score int) ScoreBand {
	switch {
	case score > 80:
		return BandGood
	case score >= 60:
		return BandFair
	default:
		return BandPoor
	}
}

// LongevityYears rounds a duration in days to whole years. Zero means unknown.
func LongevityYears(days int) int {
	if days <= 0 {
		return 0
	}
	return int(math.Round(float64(days) / 365))
}

// EventDays counts events per day of the given month in loc
func EventDays(events []Event, year int, month time.Month, loc *time.Location) map[int]int {
	if loc == nil {
		loc = time.Local
	}
	days := make(map[int]int)
	for _, e := range events {
		d := e.Date.In(loc)
		if d.Year() == year && d.Month() == month {
			days[d.Day()]++
		}
	}
	return days
}

// naturalID sorts numeric ids numerically and everything else as text
func naturalID(id string) any {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		return n
	}
	return id
}
