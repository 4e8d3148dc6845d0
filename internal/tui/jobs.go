package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/khrees2412/talentdesk/internal/matcher"
	"github.com/khrees2412/talentdesk/internal/router"
	"github.com/khrees2412/talentdesk/internal/ui"
	"github.com/khrees2412/talentdesk/internal/view"
	"github.com/khrees2412/talentdesk/pkg/models"
)

var jobFieldLabels = map[string]string{
	models.JobFieldName:         "Job Name",
	models.JobFieldDescription:  "Description",
	models.JobFieldRequirements: "Requirements",
}

func (s *Session) jobs(ctx context.Context) (string, error) {
	list := view.NewListView[models.Job](s.repos.Jobs, s.notes, view.ListOptions[models.Job]{
		DetailPrefix: router.JobPath(""),
		Toggler:      s.repos.Jobs,
		Messages:     view.ListMessages{Deleted: "Job successfully deleted!", Toggled: "Job status updated"},
		Logger:       s.log,
	})
	list.Load(ctx)
	form := NewJobForm(s.repos.Jobs, func(msg string) {
		s.notes.Success(msg)
		list.Refresh(ctx)
	})

	for {
		s.header("Jobs")
		rows := list.Rows()
		if len(rows) == 0 {
			s.println("No jobs found.")
		} else {
			col, desc := list.Sort()
			headers := []string{
				"#",
				ui.SortHeader("ID", col == "id", desc),
				ui.SortHeader("Name", col == "name", desc),
				ui.SortHeader("Status", col == "active", desc),
			}
			table := make([][]string, 0, len(rows))
			for i, j := range rows {
				table = append(table, []string{strconv.Itoa(i + 1), j.ID, j.Name, ui.Active(j.IsActive)})
			}
			s.printf("%s", ui.Table(headers, table))
		}
		s.println(ui.Pager(list.Page(), list.Pages(), list.Total()))

		s.println("\nCommands: <n> view  a add  t <n> toggle  d <n> delete  s <id|name|active> sort  n/p page  b back  q quit")
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
		case "a":
			if err := s.fill(ctx, form); err != nil {
				return "", err
			}
		case "t", "d":
			i, ok := pick(arg, len(rows))
			if !ok {
				s.println("Invalid selection")
				continue
			}
			if verb == "t" {
				list.Toggle(ctx, rows[i].ID)
				continue
			}
			if yes, err := s.confirm("Delete " + rows[i].Name + "?"); err != nil {
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

func (s *Session) jobDetail(ctx context.Context, id string) (string, error) {
	back := false
	detail := view.NewDetailView[models.Job](id, s.repos.Jobs, s.notes, view.DetailOptions[models.Job]{
		Saver:     s.repos.Jobs,
		OnDeleted: func() { back = true },
		Messages: view.DetailMessages{
			Saved:   "Job details updated successfully",
			Deleted: "Job deleted successfully",
		},
		Logger: s.log,
	})
	detail.Load(ctx)

	for {
		if back {
			return router.PathJobs, nil
		}
		s.header("Job Details")
		switch detail.Phase() {
		case view.PhaseNotFound:
			s.println("No job found with that ID.")
			return s.waitBack(router.PathJobs)
		case view.PhaseError:
			s.println(ui.ErrorStyle.Render(detail.Err()))
			return s.waitBack(router.PathJobs)
		}

		s.println(ui.JobDetail(detail.Record()))

		s.println("\nOptions:")
		s.println("  [e] Edit")
		s.println("  [m] Best matching candidates")
		s.println("  [d] Delete job")
		s.println("  [b] Back to list")
		choice, err := s.prompt("\n> ")
		if err != nil {
			return "", err
		}
		switch verb, _ := command(choice); verb {
		case "e":
			if err := s.editJob(ctx, detail); err != nil {
				return "", err
			}
		case "m":
			s.matches(ctx, detail.Record())
		case "d":
			if yes, err := s.confirm("Delete this job?"); err != nil {
				return "", err
			} else if yes {
				detail.Delete(ctx)
			}
		case "b":
			return router.PathJobs, nil
		case "q":
			return "", errQuit
		default:
			s.println("Invalid choice")
		}
	}
}

// editJob walks the draft field by field. An empty answer keeps the value.
func (s *Session) editJob(ctx context.Context, detail *view.DetailView[models.Job]) error {
	if err := detail.Edit(); err != nil {
		s.println(err.Error())
		return nil
	}
	job := detail.Record()
	for _, name := range job.EditableFields() {
		s.println(ui.Field(jobFieldLabels[name], job.FieldValue(name)))
		var (
			value string
			err   error
		)
		if name == models.JobFieldName {
			value, err = s.prompt("New value (enter to keep): ")
		} else {
			value, err = s.promptMultiline("New value (empty to keep)")
		}
		if err != nil {
			return err
		}
		if value != "" {
			detail.SetField(name, value)
		}
	}

	for detail.Phase() == view.PhaseEditing {
		choice, err := s.prompt("[s] Save  [c] Cancel\n> ")
		if err != nil {
			return err
		}
		switch verb, _ := command(choice); verb {
		case "s":
			if err := detail.Save(ctx); err != nil {
				s.println(ui.ErrorStyle.Render(s.notes.Current(view.SeverityError)))
			}
		case "c":
			detail.Cancel()
		}
	}
	return nil
}

func (s *Session) matches(ctx context.Context, job models.Job) {
	users, err := s.repos.Users.Profiles(ctx)
	if err != nil {
		s.log.Error("failed to load candidates", "error", err)
		s.notes.Error("Could not load candidates")
		return
	}
	ranked := matcher.Rank(job, users)
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	s.println(ui.Label("\nBest matches"))
	for i, m := range ranked {
		s.printf("%d. %s  %.0f%%  %s\n", i+1, m.User.Account.FullName(), m.Score*100,
			ui.MutedStyle.Render(strings.Join(m.Hits, ", ")))
	}
}
