// Package router resolves console paths to screens.
package router

import (
	"errors"
	"strings"
)

// ErrNoRoute is returned for paths no screen handles.
var ErrNoRoute = errors.New("no such page")

// Screen identifies what a path shows.
type Screen string

const (
	ScreenDashboard  Screen = "dashboard"
	ScreenUsers      Screen = "users"
	ScreenJobs       Screen = "jobs"
	ScreenInterview  Screen = "interview"
	ScreenUserDetail Screen = "user"
	ScreenJobDetail  Screen = "job"
)

// Well-known paths.
const (
	PathDashboard = "/dashboard"
	PathUsers     = "/utils/users"
	PathJobs      = "/utils/jobs"
	PathInterview = "/utils/interview"
)

// Route is a resolved path.
type Route struct {
	Screen Screen
	ID     string
}

var static = map[string]Screen{
	"/":           ScreenDashboard,
	PathDashboard: ScreenDashboard,
	PathUsers:     ScreenUsers,
	PathJobs:      ScreenJobs,
	PathInterview: ScreenInterview,
}

var detail = map[string]Screen{
	"users": ScreenUserDetail,
	"jobs":  ScreenJobDetail,
}

// Resolve maps path to a route. Trailing slashes are ignored.
func Resolve(path string) (Route, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		p = "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	if s, ok := static[p]; ok {
		return Route{Screen: s}, nil
	}
	parts := strings.Split(strings.TrimPrefix(p, "/"), "/")
	if len(parts) == 2 && parts[1] != "" {
		if s, ok := detail[parts[0]]; ok {
			return Route{Screen: s, ID: parts[1]}, nil
		}
	}
	return Route{}, ErrNoRoute
}

// UserPath is the profile detail path for id.
func UserPath(id string) string { return "/users/" + id }

// JobPath is the job detail path for id.
func JobPath(id string) string { return "/jobs/" + id }

// Path renders r back to its canonical path.
func (r Route) Path() string {
	switch r.Screen {
	case ScreenUsers:
		return PathUsers
	case ScreenJobs:
		return PathJobs
	case ScreenInterview:
		return PathInterview
	case ScreenUserDetail:
		return UserPath(r.ID)
	case ScreenJobDetail:
		return JobPath(r.ID)
	}
	return PathDashboard
}
