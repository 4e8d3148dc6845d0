package tui

import (
	"context"
	"fmt"

	"github.com/khrees2412/talentdesk/internal/router"
	"github.com/khrees2412/talentdesk/internal/ui"
)

func (s *Session) dashboard(ctx context.Context) (string, error) {
	for {
		s.header("Dashboard")
		sum, err := s.repos.Summary(ctx, s.now())
		if err != nil {
			s.log.Error("failed to load summary", "error", err)
			s.println(ui.ErrorStyle.Render("Could not load summary"))
		} else {
			s.println(ui.Field("Candidates", fmt.Sprint(sum.Users)))
			s.println(ui.Field("Jobs", fmt.Sprintf("%d active of %d", sum.ActiveJobs, sum.Jobs)))
			s.println(ui.Field("Upcoming interviews", fmt.Sprint(sum.UpcomingEvents)))
		}

		s.println("\nOptions:")
		s.println("  [u] Users")
		s.println("  [j] Jobs")
		s.println("  [i] Interview calendar")
		s.println("  [q] Quit")
		choice, err := s.prompt("\n> ")
		if err != nil {
			return "", err
		}
		switch verb, _ := command(choice); verb {
		case "u":
			return router.PathUsers, nil
		case "j":
			return router.PathJobs, nil
		case "i":
			return router.PathInterview, nil
		case "q":
			return "", errQuit
		default:
			s.println("Invalid choice")
		}
	}
}
