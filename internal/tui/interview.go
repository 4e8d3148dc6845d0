package tui

import (
	"context"
	"strconv"

	"github.com/khrees2412/talentdesk/internal/router"
	"github.com/khrees2412/talentdesk/internal/ui"
	"github.com/khrees2412/talentdesk/internal/view"
)

func (s *Session) interview(ctx context.Context) (string, error) {
	cal := view.NewCalendar(s.repos.Events, s.now(), s.log)
	if err := cal.Load(ctx); err != nil {
		s.notes.Error("Could not load events")
	}

	for {
		year, month := cal.Month()
		s.header("Interview Calendar: " + cal.Title())
		s.println(ui.Calendar(year, month, cal.Days(), cal.Location()))

		events := cal.Events()
		if len(events) == 0 {
			s.println("No events this month.")
		}
		for i, e := range events {
			s.printf("%2d. %s  %s  %s\n", i+1,
				e.Date.In(cal.Location()).Format("Mon 02 Jan 15:04"), e.Title, ui.MutedStyle.Render(e.Email))
		}

		s.println("\nCommands: a add  x <n> delete  v <day> show day  n/p month  b back  q quit")
		input, err := s.prompt("> ")
		if err != nil {
			return "", err
		}
		verb, arg := command(input)
		switch verb {
		case "q":
			return "", errQuit
		case "b":
			return router.PathDashboard, nil
		case "n":
			cal.Shift(ctx, 1)
		case "p":
			cal.Shift(ctx, -1)
		case "v":
			day, err := strconv.Atoi(arg)
			if err != nil {
				s.println("Invalid day")
				continue
			}
			for _, e := range cal.On(day) {
				s.println(ui.Label(e.Title) + "  " + e.Date.In(cal.Location()).Format("15:04"))
				s.println("  " + e.Description)
				s.println("  " + ui.MutedStyle.Render(e.Email))
			}
		case "a":
			emails, err := s.repos.Users.Emails(ctx)
			if err != nil {
				s.log.Error("failed to load invitee emails", "error", err)
			}
			form := NewEventForm(s.repos.Events, emails, cal.Location(), func(msg string) {
				s.notes.Success(msg)
				cal.Load(ctx)
			})
			if err := s.fill(ctx, form); err != nil {
				return "", err
			}
		case "x":
			i, ok := pick(arg, len(events))
			if !ok {
				s.println("Invalid selection")
				continue
			}
			if err := s.repos.Events.Delete(ctx, events[i].ID); err != nil {
				s.notes.Error(err.Error())
				continue
			}
			s.notes.Success("Event deleted")
			cal.Load(ctx)
		default:
			s.println("Invalid choice")
		}
	}
}
