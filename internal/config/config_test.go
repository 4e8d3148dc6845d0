package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

// isolate points the config directory at a temp dir and clears backend env.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TALENTDESK_HOME", dir)
	for _, names := range envNames {
		for _, n := range names {
			t.Setenv(n, "")
		}
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendSupabase || cfg.RateLimit != 10 || cfg.LogLevel != "warn" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !strings.HasPrefix(cfg.SQLitePath, dir) {
		t.Errorf("sqlite path %q not under %q", cfg.SQLitePath, dir)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("Validate = %v, want ErrMissingCredentials", err)
	}
}

func TestLoadLegacyEnvNames(t *testing.T) {
	isolate(t)
	t.Setenv("VITE_REACT_APP_SUPABASE_URL", "https://legacy.supabase.co")
	t.Setenv("VITE_REACT_APP_SUPABASE_KEY", "legacy-key")
	t.Setenv("SUPABASE_KEY", "new-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SupabaseURL != "https://legacy.supabase.co" {
		t.Errorf("SupabaseURL = %q", cfg.SupabaseURL)
	}
	if cfg.SupabaseKey != "new-key" {
		t.Errorf("SUPABASE_KEY should win over the legacy name, got %q", cfg.SupabaseKey)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"supabase ok", Config{Backend: BackendSupabase, SupabaseURL: "u", SupabaseKey: "k"}, nil},
		{"supabase missing key", Config{Backend: BackendSupabase, SupabaseURL: "u"}, ErrMissingCredentials},
		{"postgres missing url", Config{Backend: BackendPostgres}, ErrMissingCredentials},
		{"postgres ok", Config{Backend: BackendPostgres, DatabaseURL: "postgres://x"}, nil},
		{"sqlite needs nothing", Config{Backend: BackendSQLite}, nil},
		{"unknown", Config{Backend: "mysql"}, ErrUnknownBackend},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSetWritesFile(t *testing.T) {
	isolate(t)
	if err := Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := Set("backend", "sqlite"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := Set("openai_key", "x"); err == nil {
		t.Error("unknown key should be rejected")
	}
	if err := Initialize(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if Get("backend") != BackendSQLite {
		t.Errorf("backend = %q after set", Get("backend"))
	}
}

func TestKeyRole(t *testing.T) {
	key, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "anon", "iss": "supabase"}).
		SignedString([]byte("not-the-project-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	role, err := KeyRole(key)
	if err != nil {
		t.Fatalf("KeyRole: %v", err)
	}
	if role != "anon" {
		t.Errorf("role = %q", role)
	}
	if _, err := KeyRole("not-a-jwt"); err == nil {
		t.Error("expected error for a non-JWT key")
	}
}
