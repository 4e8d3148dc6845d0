package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backends the gateway can be built on.
const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

var (
	// ErrMissingCredentials means the selected backend has no connection details.
	ErrMissingCredentials = errors.New("missing backend credentials")
	// ErrUnknownBackend rejects backend values other than supabase, postgres and sqlite.
	ErrUnknownBackend = errors.New("unknown backend")
)

// Config holds the application configuration
type Config struct {
	Backend     string  `mapstructure:"backend"`
	SupabaseURL string  `mapstructure:"supabase_url"`
	SupabaseKey string  `mapstructure:"supabase_key"`
	DatabaseURL string  `mapstructure:"database_url"`
	SQLitePath  string  `mapstructure:"sqlite_path"`
	RateLimit   float64 `mapstructure:"rate_limit"` // requests per second to the REST API
	LogLevel    string  `mapstructure:"log_level"`
	LogFormat   string  `mapstructure:"log_format"` // text or json
	ChromePath  string  `mapstructure:"chrome_path"`
}

var AppConfig *Config

// Keys that `config set` accepts.
var Keys = []string{
	"backend", "supabase_url", "supabase_key", "database_url",
	"sqlite_path", "rate_limit", "log_level", "log_format", "chrome_path",
}

// envNames lists the environment variables bound to each key, first wins.
var envNames = map[string][]string{
	"backend":      {"TALENTDESK_BACKEND"},
	"supabase_url": {"SUPABASE_URL", "VITE_REACT_APP_SUPABASE_URL"},
	"supabase_key": {"SUPABASE_KEY", "VITE_REACT_APP_SUPABASE_KEY"},
	"database_url": {"DATABASE_URL"},
	"sqlite_path":  {"TALENTDESK_SQLITE_PATH"},
	"log_level":    {"TALENTDESK_LOG_LEVEL"},
	"log_format":   {"TALENTDESK_LOG_FORMAT"},
	"chrome_path":  {"TALENTDESK_CHROME_PATH"},
}

// Dir is the configuration directory: $TALENTDESK_HOME or ~/.talentdesk.
func Dir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("TALENTDESK_HOME")); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".talentdesk"), nil
}

// Initialize loads or creates the configuration file, then layers .env and
// the environment on top.
func Initialize() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

// Load reads the configuration without touching AppConfig.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	configDir, err := Dir()
	if err != nil {
		return nil, err
	}
	configFile := filepath.Join(configDir, "config.yaml")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := createDefaultConfig(configFile); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	v.SetDefault("backend", BackendSupabase)
	v.SetDefault("supabase_url", "")
	v.SetDefault("supabase_key", "")
	v.SetDefault("database_url", "")
	v.SetDefault("sqlite_path", filepath.Join(configDir, "talentdesk.db"))
	v.SetDefault("rate_limit", 10)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")
	v.SetDefault("chrome_path", "")

	for key, names := range envNames {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	return cfg, nil
}

// Validate checks that the selected backend can be reached.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSupabase, "":
		var missing []string
		if strings.TrimSpace(c.SupabaseURL) == "" {
			missing = append(missing, "SUPABASE_URL")
		}
		if strings.TrimSpace(c.SupabaseKey) == "" {
			missing = append(missing, "SUPABASE_KEY")
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: set %s", ErrMissingCredentials, strings.Join(missing, " and "))
		}
	case BackendPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("%w: set DATABASE_URL", ErrMissingCredentials)
		}
	case BackendSQLite:
	default:
		return fmt.Errorf("%w %q: use supabase, postgres or sqlite", ErrUnknownBackend, c.Backend)
	}
	return nil
}

// KeyRole reads the role claim of a Supabase API key. The signature is not
// checked; the key is only inspected for display.
func KeyRole(key string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(key), claims); err != nil {
		return "", fmt.Errorf("parse api key: %w", err)
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return "", fmt.Errorf("api key has no role claim")
	}
	return role, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# talentdesk configuration
# Backend: supabase, postgres, sqlite
backend: supabase

# Supabase project (keep this file secure!)
supabase_url: ""
supabase_key: ""

# Direct Postgres connection for backend: postgres
database_url: ""

# Requests per second to the Supabase REST API
rate_limit: 10

# debug, info, warn, error
log_level: warn
log_format: text
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Set updates a configuration value in the file only, so values that came
// from the environment are not persisted.
func Set(key, value string) error {
	if !ValidKey(key) {
		return fmt.Errorf("invalid key %q: must be one of %s", key, strings.Join(Keys, ", "))
	}
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	v.Set(key, value)
	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Get retrieves a configuration value from the loaded configuration
func Get(key string) string {
	if AppConfig == nil {
		return ""
	}
	switch key {
	case "backend":
		return AppConfig.Backend
	case "supabase_url":
		return AppConfig.SupabaseURL
	case "supabase_key":
		return AppConfig.SupabaseKey
	case "database_url":
		return AppConfig.DatabaseURL
	case "sqlite_path":
		return AppConfig.SQLitePath
	case "rate_limit":
		return fmt.Sprint(AppConfig.RateLimit)
	case "log_level":
		return AppConfig.LogLevel
	case "log_format":
		return AppConfig.LogFormat
	case "chrome_path":
		return AppConfig.ChromePath
	}
	return ""
}

// ValidKey reports whether key is settable.
func ValidKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
