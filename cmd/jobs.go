package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khrees2412/talentdesk/internal/matcher"
	"github.com/khrees2412/talentdesk/internal/router"
	"github.com/khrees2412/talentdesk/internal/tui"
	"github.com/khrees2412/talentdesk/internal/ui"
	"github.com/khrees2412/talentdesk/internal/view"
	"github.com/khrees2412/talentdesk/pkg/models"
)

var jobsCmd = &cobra.Command{
	Use:     "jobs",
	Aliases: []string{"job"},
	Short:   "Manage job postings",
	Long:    "Add, list, view, edit, toggle, match and remove job postings",
}

var listJobsCmd = &cobra.Command{
	Use:   "list",
	Short: "List job postings",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := connected(cmd)
		if err != nil {
			return err
		}
		list := view.NewListView[models.Job](a.Repos.Jobs, a.Notes, view.ListOptions[models.Job]{
			DetailPrefix: router.JobPath(""),
			Logger:       a.Logger,
		})
		if err := loadList(cmd.Context(), cmd, list); err != nil {
			return fmt.Errorf("failed to load jobs: %w", err)
		}

		rows := list.Rows()
		if len(rows) == 0 {
			fmt.Println("No jobs found. Add one with 'talentdesk jobs add'")
			return nil
		}
		fmt.Println(ui.Title("Jobs"))
		table := make([][]string, 0, len(rows))
		for _, j := range rows {
			table = append(table, []string{j.ID, j.Name, ui.Active(j.IsActive)})
		}
		fmt.Print(ui.Table([]string{"ID", "Name", "Status"}, table))
		printPager(list)
		return nil
	},
}

var showJobCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a job posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := connected(cmd)
		if err != nil {
			return err
		}
		detail := loadJob(cmd, a.Repos.Jobs, a.Notes, args[0], view.DetailOptions[models.Job]{Logger: a.Logger})
		if err := detailErr(detail, "job", args[0]); err != nil {
			return err
		}
		fmt.Println(ui.Title("Job Details"))
		fmt.Println(ui.JobDetail(detail.Record()))
		return nil
	},
}

var addJobCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a job posting",
	Example: `  talentdesk jobs add --name "Backend Engineer" \
    --desc $'Design services\nOwn the database' --req $'3+ years Go\nPostgres'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := connected(cmd)
		if err != nil {
			return err
		}
		form := tui.NewJobForm(a.Repos.Jobs, a.Notes.Success)
		form.Open()
		for flag, field := range jobFlagFields {
			v, _ := cmd.Flags().GetString(flag)
			form.Set(field, v)
		}
		if err := form.Submit(cmd.Context()); err != nil {
			return errors.New(form.Err())
		}
		printNotes(a)
		return nil
	},
}

var editJobCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a job posting",
	Long:  "Change the name, description or requirements of a job. Omitted flags keep their value.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := connected(cmd)
		if err != nil {
			return err
		}
		detail := loadJob(cmd, a.Repos.Jobs, a.Notes, args[0], view.DetailOptions[models.Job]{
			Saver:    a.Repos.Jobs,
			Messages: view.DetailMessages{Saved: "Job details updated successfully"},
			Logger:   a.Logger,
		})
		if err := detailErr(detail, "job", args[0]); err != nil {
			return err
		}
		if err := detail.Edit(); err != nil {
			return err
		}
		changed := false
		for flag, field := range jobFlagFields {
			if !cmd.Flags().Changed(flag) {
				continue
			}
			v, _ := cmd.Flags().GetString(flag)
			if err := detail.SetField(field, v); err != nil {
				return err
			}
			changed = true
		}
		if !changed {
			detail.Cancel()
			fmt.Println("Nothing to update. Pass --name, --desc or --req.")
			return nil
		}
		err = detail.Save(cmd.Context())
		printNotes(a)
		return err
	},
}

var deleteJobCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a job posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := connected(cmd)
		if err != nil {
			return err
		}
		detail := loadJob(cmd, a.Repos.Jobs, a.Notes, args[0], view.DetailOptions[models.Job]{
			Messages: view.DetailMessages{Deleted: "Job deleted successfully"},
			Logger:   a.Logger,
		})
		if err := detailErr(detail, "job", args[0]); err != nil {
			return err
		}
		if !confirm(cmd, "Delete "+detail.Record().Name+"?") {
			fmt.Println("Cancelled")
			return nil
		}
		err = detail.Delete(cmd.Context())
		printNotes(a)
		return err
	},
}

var toggleJobCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Activate or deactivate a job posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := connected(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		job, err := a.Repos.Jobs.Get(ctx, args[0])
		if err != nil {
			return loadErr("job", args[0], err)
		}
		updated, err := a.Repos.Jobs.Toggle(ctx, job)
		if err != nil {
			return fmt.Errorf("failed to update job: %w", err)
		}
		fmt.Printf("✓ %s is now %s\n", updated.Name, ui.Active(updated.IsActive))
		return nil
	},
}

var matchJobCmd = &cobra.Command{
	Use:   "match <id>",
	Short: "Rank candidates for a job posting",
	Long:  "Score every candidate against the job's requirements, title and their fitment score",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := connected(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		job, err := a.Repos.Jobs.Get(ctx, args[0])
		if err != nil {
			return loadErr("job", args[0], err)
		}
		users, err := a.Repos.Users.Profiles(ctx)
		if err != nil {
			return fmt.Errorf("failed to load candidates: %w", err)
		}
		limit, _ := cmd.Flags().GetInt("limit")
		ranked := matcher.Rank(job, users)
		if limit > 0 && len(ranked) > limit {
			ranked = ranked[:limit]
		}

		fmt.Println(ui.Title("Best matches for " + job.Name))
		if len(ranked) == 0 {
			fmt.Println("No candidates found.")
			return nil
		}
		table := make([][]string, 0, len(ranked))
		for _, m := range ranked {
			table = append(table, []string{
				fmt.Sprintf("%.0f%%", m.Score*100),
				m.User.Account.FullName(),
				m.User.Profile.JobRole,
				strings.Join(m.Hits, ", "),
			})
		}
		fmt.Print(ui.Table([]string{"Match", "Name", "Role", "Keywords"}, table))
		return nil
	},
}

var jobFlagFields = map[string]string{
	"name": models.JobFieldName,
	"desc": models.JobFieldDescription,
	"req":  models.JobFieldRequirements,
}

func loadJob(cmd *cobra.Command, src view.Loader[models.Job], notes *view.Notifier, id string, opts view.DetailOptions[models.Job]) *view.DetailView[models.Job] {
	detail := view.NewDetailView[models.Job](id, src, notes, opts)
	detail.Load(cmd.Context())
	return detail
}

// detailErr turns a non-ready detail screen into a command error.
func detailErr[T models.Record](d *view.DetailView[T], kind, id string) error {
	switch d.Phase() {
	case view.PhaseReady:
		return nil
	case view.PhaseNotFound:
		return fmt.Errorf("no %s found with id %s", kind, id)
	}
	return fmt.Errorf("failed to load %s: %s", kind, d.Err())
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(listJobsCmd)
	jobsCmd.AddCommand(showJobCmd)
	jobsCmd.AddCommand(addJobCmd)
	jobsCmd.AddCommand(editJobCmd)
	jobsCmd.AddCommand(deleteJobCmd)
	jobsCmd.AddCommand(toggleJobCmd)
	jobsCmd.AddCommand(matchJobCmd)

	addListFlags(listJobsCmd, "id, name, active")
	for _, c := range []*cobra.Command{addJobCmd, editJobCmd} {
		c.Flags().String("name", "", "Job name")
		c.Flags().String("desc", "", "Description, one bullet per line")
		c.Flags().String("req", "", "Requirements, one bullet per line")
	}
	deleteJobCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")
	matchJobCmd.Flags().Int("limit", 10, "Number of candidates to show, 0 for all")
}
