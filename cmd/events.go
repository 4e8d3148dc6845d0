package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/khrees2412/talentdesk/internal/app"
	"github.com/khrees2412/talentdesk/internal/tui"
	"github.com/khrees2412/talentdesk/internal/ui"
	"github.com/khrees2412/talentdesk/internal/view"
)

var eventsCmd = &cobra.Command{
	Use:     "events",
	Aliases: []string{"event", "interviews"},
	Short:   "Manage interview events",
	Long:    "Show the interview calendar and create or remove events",
}

var listEventsCmd = &cobra.Command{
	Use:   "list",
	Short: "Show one month of interview events",
	Example: `  talentdesk events list
  talentdesk events list --month 2026-11`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := connected(cmd)
		if err != nil {
			return err
		}
		start := time.Now()
		if month, _ := cmd.Flags().GetString("month"); month != "" {
			start, err = time.ParseInLocation("2006-01", month, time.Local)
			if err != nil {
				return fmt.Errorf("%w: --month %q, use YYYY-MM", app.ErrInvalidArgument, month)
			}
		}

		cal := view.NewCalendar(a.Repos.Events, start, a.Logger)
		if err := cal.Load(cmd.Context()); err != nil {
			return err
		}
		year, month := cal.Month()
		fmt.Println(ui.Title("Interviews: " + cal.Title()))
		fmt.Println(ui.Calendar(year, month, cal.Days(), cal.Location()))

		events := cal.Events()
		if len(events) == 0 {
			fmt.Println("No events this month.")
			return nil
		}
		table := make([][]string, 0, len(events))
		for _, e := range events {
			table = append(table, []string{e.ID, e.Date.In(cal.Location()).Format("Mon 02 Jan 15:04"), e.Title, e.Email})
		}
		fmt.Print(ui.Table([]string{"ID", "Date", "Title", "Invitee"}, table))
		return nil
	},
}

var createEventCmd = &cobra.Command{
	Use:   "create",
	Short: "Schedule an interview event",
	Example: `  talentdesk events create --title "Technical interview" \
    --desc "Go pairing session" --date "2026-10-20 14:00" --email ada@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := connected(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		emails, err := a.Repos.Users.Emails(ctx)
		if err != nil {
			return fmt.Errorf("failed to load invitees: %w", err)
		}

		form := tui.NewEventForm(a.Repos.Events, emails, time.Local, a.Notes.Success)
		form.Open()
		for flag, field := range eventFlagFields {
			v, _ := cmd.Flags().GetString(flag)
			if err := form.Set(field, v); err != nil {
				return err
			}
		}
		if err := form.Submit(ctx); err != nil {
			return errors.New(form.Err())
		}
		printNotes(a)
		return nil
	},
}

var deleteEventCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove an interview event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := connected(cmd)
		if err != nil {
			return err
		}
		if !confirm(cmd, "Delete event "+args[0]+"?") {
			fmt.Println("Cancelled")
			return nil
		}
		if err := a.Repos.Events.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete event: %w", err)
		}
		fmt.Println("✓ Event deleted")
		return nil
	},
}

var eventFlagFields = map[string]string{
	"title": tui.EventFieldTitle,
	"desc":  tui.EventFieldDescription,
	"date":  tui.EventFieldDate,
	"email": tui.EventFieldEmail,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(listEventsCmd)
	eventsCmd.AddCommand(createEventCmd)
	eventsCmd.AddCommand(deleteEventCmd)

	listEventsCmd.Flags().String("month", "", "Month to show as YYYY-MM (default current)")
	createEventCmd.Flags().String("title", "", "Event title")
	createEventCmd.Flags().String("desc", "", "Event description")
	createEventCmd.Flags().String("date", "", "Start as YYYY-MM-DD HH:MM in local time")
	createEventCmd.Flags().String("email", "", "Invitee email, must belong to an existing account")
	deleteEventCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")
}
