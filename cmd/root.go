package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/khrees2412/talentdesk/internal/app"
	"github.com/khrees2412/talentdesk/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "talentdesk",
	Short: "Recruiting admin console",
	Long: `talentdesk is a CLI/TUI admin console for a recruiting platform.
It lists and manages candidate profiles, job postings and interview events
stored in Supabase, a Postgres database or a local SQLite file.`,
	Version:      "0.1.0",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		cmd.SetContext(app.SetAppInContext(cmd.Context(), application))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if application := app.GetAppFromContext(cmd.Context()); application != nil {
			return application.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func connected(cmd *cobra.Command) (*app.App, error) {
	return app.Connected(cmd.Context())
}

// loadErr names a missing row instead of echoing the backend error.
func loadErr(kind, id string, err error) error {
	if app.IsNotFound(err) {
		return fmt.Errorf("no %s found with id %s", kind, id)
	}
	return fmt.Errorf("failed to load %s: %w", kind, err)
}

// printNotes flushes the notification slots after a one-shot command.
func printNotes(a *app.App) {
	if out := ui.Notifications(a.Notes.Active()); out != "" {
		fmt.Println(out)
	}
}

// confirm asks on stdin unless --yes was given.
func confirm(cmd *cobra.Command, question string) bool {
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return true
	}
	fmt.Printf("%s [y/N] ", question)
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	answer = strings.TrimSpace(answer)
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}
