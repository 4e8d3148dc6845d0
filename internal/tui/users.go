package tui

import (
	"context"
	"strconv"

	"github.com/khrees2412/talentdesk/internal/router"
	"github.com/khrees2412/talentdesk/internal/ui"
	"github.com/khrees2412/talentdesk/internal/view"
	"github.com/khrees2412/talentdesk/pkg/models"
)

var userColumns = []struct{ key, title string }{
	{"name", "Name"},
	{"email", "Email"},
	{"score", "Score"},
	{"role", "Role"},
}

func (s *Session) users(ctx context.Context) (string, error) {
	list := view.NewListView[models.UserSummary](s.repos.Users, s.notes, view.ListOptions[models.UserSummary]{
		DetailPrefix: router.UserPath(""),
		Messages:     view.ListMessages{Deleted: "User profile deleted successfully!"},
		Logger:       s.log,
	})
	list.Load(ctx)

	for {
		s.header("Users")
		rows := list.Rows()
		if len(rows) == 0 {
			s.println("No users found.")
		} else {
			col, desc := list.Sort()
			headers := []string{"#"}
			for _, c := range userColumns {
				headers = append(headers, ui.SortHeader(c.title, c.key == col, desc))
			}
			table := make([][]string, 0, len(rows))
			for i, u := range rows {
				table = append(table, []string{
					strconv.Itoa(i + 1), u.FullName(), u.Email, ui.Score(u.Score), ui.TitleCase(u.Role),
				})
			}
			s.printf("%s", ui.Table(headers, table))
		}
		s.println(ui.Pager(list.Page(), list.Pages(), list.Total()))

		s.println("\nCommands: <n> view  d <n> delete  s <name|email|score|role> sort  n/p page  b back  q quit")
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
			list.Next(ctx)
		case "p":
			list.Prev(ctx)
		case "s":
			list.SortBy(arg)
		case "d":
			i, ok := pick(arg, len(rows))
			if !ok {
				s.println("Invalid selection")
				continue
			}
			if yes, err := s.confirm("Delete " + rows[i].FullName() + "?"); err != nil {
				return "", err
			} else if yes {
				list.Delete(ctx, rows[i].ID)
			}
		default:
			i, ok := pick(verb, len(rows))
			if !ok {
				s.println("Invalid selection")
				continue
			}
			return list.DetailPath(rows[i].ID), nil
		}
	}
}

func (s *Session) userDetail(ctx context.Context, id string) (string, error) {
	back := false
	detail := view.NewDetailView[models.UserProfile](id, s.repos.Users, s.notes, view.DetailOptions[models.UserProfile]{
		OnDeleted: func() { back = true },
		Messages:  view.DetailMessages{Deleted: "User profile deleted successfully!"},
		Logger:    s.log,
	})
	detail.Load(ctx)

	for {
		if back {
			return router.PathUsers, nil
		}
		s.header("User Profile")
		switch detail.Phase() {
		case view.PhaseNotFound:
			s.println("No user found with that ID.")
			return s.waitBack(router.PathUsers)
		case view.PhaseError:
			s.println(ui.ErrorStyle.Render(detail.Err()))
			return s.waitBack(router.PathUsers)
		}

		s.println(ui.UserProfile(detail.Record()))

		s.println("\nOptions:")
		s.println("  [d] Delete user")
		s.println("  [b] Back to list")
		choice, err := s.prompt("\n> ")
		if err != nil {
			return "", err
		}
		switch verb, _ := command(choice); verb {
		case "d":
			if yes, err := s.confirm("Delete this user?"); err != nil {
				return "", err
			} else if yes {
				detail.Delete(ctx)
			}
		case "b":
			return router.PathUsers, nil
		case "q":
			return "", errQuit
		default:
			s.println("Invalid choice")
		}
	}
}

// waitBack pauses on a terminal screen state until the user leaves.
func (s *Session) waitBack(path string) (string, error) {
	choice, err := s.prompt("\n[b] Back  [q] Quit\n> ")
	if err != nil {
		return "", err
	}
	if verb, _ := command(choice); verb == "q" {
		return "", errQuit
	}
	return path, nil
}
