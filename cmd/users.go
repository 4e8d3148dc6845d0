package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khrees2412/talentdesk/internal/profilecard"
	"github.com/khrees2412/talentdesk/internal/router"
	"github.com/khrees2412/talentdesk/internal/ui"
	"github.com/khrees2412/talentdesk/internal/view"
	"github.com/khrees2412/talentdesk/pkg/models"
)

var usersCmd = &cobra.Command{
	Use:     "users",
	Aliases: []string{"user"},
	Short:   "Manage candidate profiles",
	Long:    "List, view, delete and export candidate profiles",
}

var listUsersCmd = &cobra.Command{
	Use:   "list",
	Short: "List candidates",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := connected(cmd)
		if err != nil {
			return err
		}
		list := view.NewListView[models.UserSummary](a.Repos.Users, a.Notes, view.ListOptions[models.UserSummary]{
			DetailPrefix: router.UserPath(""),
			Logger:       a.Logger,
		})
		if err := loadList(cmd.Context(), cmd, list); err != nil {
			return fmt.Errorf("failed to load users: %w", err)
		}

		rows := list.Rows()
		if len(rows) == 0 {
			fmt.Println("No users found.")
			return nil
		}
		fmt.Println(ui.Title("Users"))
		table := make([][]string, 0, len(rows))
		for _, u := range rows {
			table = append(table, []string{u.ID, u.FullName(), u.Email, ui.Score(u.Score), ui.TitleCase(u.Role)})
		}
		fmt.Print(ui.Table([]string{"ID", "Name", "Email", "Score", "Role"}, table))
		printPager(list)
		return nil
	},
}

var showUserCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a candidate profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := connected(cmd)
		if err != nil {
			return err
		}
		detail := view.NewDetailView[models.UserProfile](args[0], a.Repos.Users, a.Notes, view.DetailOptions[models.UserProfile]{Logger: a.Logger})
		detail.Load(cmd.Context())
		switch detail.Phase() {
		case view.PhaseNotFound:
			return fmt.Errorf("no user found with id %s", args[0])
		case view.PhaseError:
			return fmt.Errorf("failed to load user: %s", detail.Err())
		}
		fmt.Println(ui.Title("User Profile"))
		fmt.Println(ui.UserProfile(detail.Record()))
		return nil
	},
}

var deleteUserCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a candidate and their profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := connected(cmd)
		if err != nil {
			return err
		}
		detail := view.NewDetailView[models.UserProfile](args[0], a.Repos.Users, a.Notes, view.DetailOptions[models.UserProfile]{
			Messages: view.DetailMessages{Deleted: "User profile deleted successfully!"},
			Logger:   a.Logger,
		})
		detail.Load(cmd.Context())
		if detail.Phase() == view.PhaseNotFound {
			return fmt.Errorf("no user found with id %s", args[0])
		}
		if detail.Phase() != view.PhaseReady {
			return fmt.Errorf("failed to load user: %s", detail.Err())
		}
		if !confirm(cmd, "Delete "+detail.Record().Account.FullName()+"?") {
			fmt.Println("Cancelled")
			return nil
		}
		err = detail.Delete(cmd.Context())
		printNotes(a)
		return err
	},
}

var exportUserCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a candidate profile card as PDF or HTML",
	Example: `  talentdesk users export 7f0c... --out ada.pdf
  talentdesk users export 7f0c... --html --out ada.html`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := connected(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		up, err := a.Repos.Users.Get(ctx, args[0])
		if err != nil {
			return loadErr("user", args[0], err)
		}
		card := profilecard.NewCard(up)

		asHTML, _ := cmd.Flags().GetBool("html")
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			ext := ".pdf"
			if asHTML {
				ext = ".html"
			}
			out = strings.ReplaceAll(strings.ToLower(up.Account.FullName()), " ", "-") + ext
		}

		if asHTML {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			defer f.Close()
			if err := profilecard.RenderHTML(f, card); err != nil {
				return err
			}
		} else {
			fmt.Println("Rendering PDF...")
			pdf, err := profilecard.NewPrinter(a.Config.ChromePath, a.Logger).PDF(ctx, card)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, pdf, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
		}

		abs, _ := filepath.Abs(out)
		fmt.Printf("✓ Profile card saved to %s\n", abs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(listUsersCmd)
	usersCmd.AddCommand(showUserCmd)
	usersCmd.AddCommand(deleteUserCmd)
	usersCmd.AddCommand(exportUserCmd)

	addListFlags(listUsersCmd, "name, email, score, role")
	deleteUserCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")
	exportUserCmd.Flags().StringP("out", "o", "", "Output file (default <name>.pdf)")
	exportUserCmd.Flags().Bool("html", false, "Write HTML instead of PDF")
}
