package models

import (
	"reflect"
	"testing"
	"time"
)

func TestBullets(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"drops empty lines", "Write code\nReview PRs\n\nShip features", []string{"Write code", "Review PRs", "Ship features"}},
		{"trims whitespace", "  a \n\t b\t", []string{"a", "b"}},
		{"windows newlines", "a\r\nb\r\n", []string{"a", "b"}},
		{"empty", "", []string{}},
		{"only blanks", "\n \n\t\n", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bullets(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Bullets(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		score int
		want  ScoreBand
	}{
		{100, BandGood},
		{81, BandGood},
		{80, BandFair},
		{60, BandFair},
		{59, BandPoor},
		{0, BandPoor},
	}
	for _, tt := range tests {
		if got := BandFor(tt.score); got != tt.want {
			t.Errorf("BandFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestLongevityYears(t *testing.T) {
	tests := []struct {
		days, want int
	}{
		{0, 0},
		{-3, 0},
		{100, 0},
		{200, 1},
		{365, 1},
		{1100, 3},
	}
	for _, tt := range tests {
		if got := LongevityYears(tt.days); got != tt.want {
			t.Errorf("LongevityYears(%d) = %d, want %d", tt.days, got, tt.want)
		}
	}
}

func TestJobWithFieldsLeavesOriginal(t *testing.T) {
	job := Job{ID: "1", Name: "Engineer", Description: "a", Requirements: "b", IsActive: true}
	edited := job.WithFields(map[string]string{JobFieldName: "Senior Engineer"})

	if job.Name != "Engineer" {
		t.Errorf("original mutated: %q", job.Name)
	}
	if edited.Name != "Senior Engineer" || edited.Description != "a" || !edited.IsActive {
		t.Errorf("unexpected edit result: %+v", edited)
	}
}

func TestJobSortValueNumericID(t *testing.T) {
	a := Job{ID: "9"}.SortValue("id")
	b := Job{ID: "10"}.SortValue("id")
	if a.(int64) >= b.(int64) {
		t.Errorf("expected numeric ids, got %v and %v", a, b)
	}
	if s := (Job{ID: "abc"}).SortValue("id"); s != "abc" {
		t.Errorf("non-numeric id sort value = %v", s)
	}
}

func TestEventDays(t *testing.T) {
	events := []Event{
		{Date: time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)},
		{Date: time.Date(2026, time.March, 3, 15, 0, 0, 0, time.UTC)},
		{Date: time.Date(2026, time.March, 20, 9, 0, 0, 0, time.UTC)},
		{Date: time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)},
	}
	got := EventDays(events, 2026, time.March, time.UTC)
	want := map[int]int{3: 2, 20: 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EventDays = %v, want %v", got, want)
	}
}
