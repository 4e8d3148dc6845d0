package models

import (
	"strings"
	"time"
)

// Record is anything a list or detail view can hold.
type Record interface {
	RecordID() string
	SortValue(column string) any
}

// Account is an identity row from the auth table
type Account struct {
	ID        string `json:"id"`
	FirstName string `json:"fname"`
	LastName  string `json:"lname"`
	Email     string `json:"email"`
	Phone     string `json:"number"`
	Role      string `json:"role"`
}

// FullName joins first and last name
func (a Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Profile is the candidate profile, one-to-one with Account via AuthID
type Profile struct {
	AuthID        string `json:"auth_id"`
	Score         int    `json:"score"`
	JobRole       string `json:"job_role"`
	LongevityDays int    `json:"longevity"`
	Bio           string `json:"bio"`
	Education     string `json:"highest_education"`
	Experience    string `json:"exp_new"`
}

// UserSummary is one row of the users list
type UserSummary struct {
	Account
	Score int `json:"score"`
}

func (u UserSummary) RecordID() string { return u.ID }

func (u UserSummary) SortValue(column string) any {
	switch column {
	case "id":
		return u.ID
	case "name":
		return strings.ToLower(u.FullName())
	case "email":
		return strings.ToLower(u.Email)
	case "score":
		return u.Score
	case "role":
		return u.Role
	}
	return nil
}

// UserProfile is the joined account and profile shown on the detail screen
type UserProfile struct {
	Account Account `json:"account"`
	Profile Profile `json:"profile"`
}

func (u UserProfile) RecordID() string { return u.Account.ID }

func (u UserProfile) SortValue(column string) any {
	return UserSummary{Account: u.Account, Score: u.Profile.Score}.SortValue(column)
}

// Job is a job posting from the category table
type Job struct {
	ID           string `json:"id"`
	Name         string `json:"job_name"`
	Description  string `json:"job_desc"`
	Requirements string `json:"job_req"`
	IsActive     bool   `json:"is_active"`
}

// Editable job columns, in display order.
const (
	JobFieldName         = "job_name"
	JobFieldDescription  = "job_desc"
	JobFieldRequirements = "job_req"
)

func (j Job) RecordID() string { return j.ID }

func (j Job) SortValue(column string) any {
	switch column {
	case "id":
		return naturalID(j.ID)
	case "name", JobFieldName:
		return strings.ToLower(j.Name)
	case "active", "is_active":
		return j.IsActive
	}
	return nil
}

// EditableFields lists the columns the detail screen lets you change
func (j Job) EditableFields() []string {
	return []string{JobFieldName, JobFieldDescription, JobFieldRequirements}
}

// FieldValue returns the current value of an editable column
func (j Job) FieldValue(name string) string {
	switch name {
	case JobFieldName:
		return j.Name
	case JobFieldDescription:
		return j.Description
	case JobFieldRequirements:
		return j.Requirements
	}
	return ""
}

// WithFields returns a copy of the job with the given columns replaced
func (j Job) WithFields(fields map[string]string) Job {
	if v, ok := fields[JobFieldName]; ok {
		j.Name = v
	}
	if v, ok := fields[JobFieldDescription]; ok {
		j.Description = v
	}
	if v, ok := fields[JobFieldRequirements]; ok {
		j.Requirements = v
	}
	return j
}

// DescriptionBullets splits the description into display bullets
func (j Job) DescriptionBullets() []string { return Bullets(j.Description) }

// RequirementBullets splits the requirements into display bullets
func (j Job) RequirementBullets() []string { return Bullets(j.Requirements) }

// Event is a calendar entry inviting one person
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Email       string    `json:"email"`
}

func (e Event) RecordID() string { return e.ID }

func (e Event) SortValue(column string) any {
	switch column {
	case "id":
		return naturalID(e.ID)
	case "title":
		return strings.ToLower(e.Title)
	case "date":
		return e.Date
	case "email":
		return strings.ToLower(e.Email)
	}
	return nil
}

// Summary backs the dashboard landing screen
type Summary struct {
	Users          int `json:"users"`
	Jobs           int `json:"jobs"`
	ActiveJobs     int `json:"active_jobs"`
	UpcomingEvents int `json:"upcoming_events"`
}
