package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khrees2412/talentdesk/internal/config"
	"github.com/khrees2412/talentdesk/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "View and update configuration settings",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.AppConfig
		path, err := config.GetConfigPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving config path: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(ui.Title("Configuration"))
		fmt.Println(ui.Field("Config File", path))
		fmt.Println(ui.Field("Backend", cfg.Backend))

		switch cfg.Backend {
		case config.BackendPostgres:
			fmt.Println(ui.Field("Database URL", configured(cfg.DatabaseURL)))
		case config.BackendSQLite:
			fmt.Println(ui.Field("SQLite Path", orDefault(cfg.SQLitePath)))
		default:
			fmt.Println(ui.Field("Supabase URL", orNone(cfg.SupabaseURL)))
			fmt.Println(ui.Field("Supabase Key", configured(cfg.SupabaseKey)))
			if cfg.SupabaseKey != "" {
				role, err := config.KeyRole(cfg.SupabaseKey)
				if err != nil {
					fmt.Println(ui.Field("Key Role", ui.ErrorStyle.Render(err.Error())))
				} else {
					fmt.Println(ui.Field("Key Role", role))
					if role == "service_role" {
						fmt.Println(ui.ErrorStyle.Render("Warning: service_role keys bypass row level security"))
					}
				}
			}
			fmt.Println(ui.Field("Rate Limit", fmt.Sprintf("%g req/s", cfg.RateLimit)))
		}
		fmt.Println(ui.Field("Log Level", cfg.LogLevel))
		fmt.Println(ui.Field("Log Format", cfg.LogFormat))
		fmt.Println(ui.Field("Chrome Path", orDefault(cfg.ChromePath)))
	},
}

func configured(v string) string {
	if v == "" {
		return "✗ Not configured"
	}
	return "✓ Configured"
}

func orNone(v string) string {
	if v == "" {
		return "✗ Not configured"
	}
	return v
}

func orDefault(v string) string {
	if v == "" {
		return "(default)"
	}
	return v
}

var setConfigCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a configuration value",
	Example: `  talentdesk config set --key backend --value sqlite
  talentdesk config set --key supabase_url --value https://xyz.supabase.co
  talentdesk config set --key supabase_key --value eyJhbGciOi...
  talentdesk config set --key log_level --value debug`,
	Run: func(cmd *cobra.Command, args []string) {
		key, _ := cmd.Flags().GetString("key")
		value, _ := cmd.Flags().GetString("value")

		if key == "" || value == "" {
			fmt.Println("Both --key and --value are required")
			return
		}
		if !config.ValidKey(key) {
			fmt.Printf("Invalid key. Must be one of: %s\n", strings.Join(config.Keys, ", "))
			return
		}

		if err := config.Set(key, value); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Configuration updated: %s\n", key)

		if err := config.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not reload config: %v\n", err)
		}
	},
}

var pathConfigCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Run: func(cmd *cobra.Command, args []string) {
		path, err := config.GetConfigPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving config path: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setConfigCmd)
	configCmd.AddCommand(pathConfigCmd)

	setConfigCmd.Flags().String("key", "", "Configuration key")
	setConfigCmd.Flags().String("value", "", "Configuration value")
}
