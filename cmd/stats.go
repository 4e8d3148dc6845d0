package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/khrees2412/talentdesk/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the dashboard summary",
	Long:  "Display candidate, job and upcoming interview counts",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := connected(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting: %v\n", err)
			os.Exit(1)
		}
		sum, err := a.Repos.Summary(cmd.Context(), time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching summary: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(ui.Title("Dashboard"))
		fmt.Printf("\n%s\n", ui.Label("Candidates"))
		fmt.Printf("  Profiles: %d\n", sum.Users)
		fmt.Printf("\n%s\n", ui.Label("Jobs"))
		fmt.Printf("  Total: %d\n", sum.Jobs)
		fmt.Printf("  Active: %d\n", sum.ActiveJobs)
		if sum.Jobs > 0 {
			fmt.Printf("  Active Rate: %.1f%%\n", float64(sum.ActiveJobs)/float64(sum.Jobs)*100)
		}
		fmt.Printf("\n%s\n", ui.Label("Interviews"))
		fmt.Printf("  Upcoming: %d\n", sum.UpcomingEvents)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
