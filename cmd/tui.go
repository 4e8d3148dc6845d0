package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khrees2412/talentdesk/internal/router"
	"github.com/khrees2412/talentdesk/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [path]",
	Short: "Launch interactive TUI",
	Long: `Launch the interactive console. An optional path opens a screen directly,
for example /utils/jobs or /users/<id>.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := connected(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting: %v\n", err)
			os.Exit(1)
		}
		path := router.PathDashboard
		if len(args) == 1 {
			path = args[0]
		}
		session := tui.New(os.Stdin, os.Stdout, a.Repos, a.Notes, a.Logger)
		if err := session.Run(cmd.Context(), path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
