package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/khrees2412/talentdesk/internal/database"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill an empty backend with demo data",
	Long:  "Insert demo accounts, profiles, jobs and events. Refuses to run when accounts already exist.",
	Example: `  talentdesk config set --key backend --value sqlite
  talentdesk seed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := connected(cmd)
		if err != nil {
			return err
		}
		if err := database.Seed(cmd.Context(), a.Gateway, time.Now()); err != nil {
			return fmt.Errorf("failed to seed: %w", err)
		}
		fmt.Println("✓ Demo data inserted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
