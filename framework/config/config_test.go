package config_test

import (
	"os"
	"reflect"
	"testing"

	"github.com/km-arc/go-nox/framework/config"
)

// ── helpers ──────────────────────────────────────────────────────────────────

var keys = []string{
	"APP_NAME", "APP_ENV", "APP_DEBUG", "APP_PORT",
	"LOG_LEVEL", "LOG_FORMAT", "NOX_DEDUPE_MODULES", "NOX_MODULES",
}

func setEnv(t *testing.T, key, val string) {
	t.Helper()
	t.Setenv(key, val) // automatically restored after test
}

// clearEnv blanks every config key so defaults apply.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

// unsetEnv removes the keys entirely so a .env file can set them.
func unsetEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	})
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := config.Load("testdata/empty.env")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"App.Name", cfg.App.Name, "Nox"},
		{"App.Env", cfg.App.Env, "local"},
		{"App.Port", cfg.App.Port, "8000"},
		{"Log.Level", cfg.Log.Level, "info"},
		{"Log.Format", cfg.Log.Format, "console"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if !cfg.App.Debug {
		t.Error("App.Debug should default to true")
	}
	if cfg.Nox.DedupeModules {
		t.Error("Nox.DedupeModules should default to false")
	}
	if len(cfg.Nox.Modules) != 0 {
		t.Errorf("Nox.Modules: got %v, want none", cfg.Nox.Modules)
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	clearEnv(t)
	setEnv(t, "APP_NAME", "MyApp")
	setEnv(t, "APP_PORT", "9000")
	setEnv(t, "LOG_LEVEL", "debug")
	setEnv(t, "NOX_DEDUPE_MODULES", "true")
	setEnv(t, "NOX_MODULES", "*")

	cfg := config.Load("testdata/empty.env")

	if cfg.App.Name != "MyApp" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "MyApp")
	}
	if cfg.App.Port != "9000" {
		t.Errorf("App.Port: got %q want %q", cfg.App.Port, "9000")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level: got %q want %q", cfg.Log.Level, "debug")
	}
	if !cfg.Nox.DedupeModules {
		t.Error("Nox.DedupeModules should be true")
	}
	if !reflect.DeepEqual(cfg.Nox.Modules, []string{"*"}) {
		t.Errorf("Nox.Modules: got %v want [*]", cfg.Nox.Modules)
	}
}

func TestLoad_FromEnvFile(t *testing.T) {
	unsetEnv(t)
	cfg := config.Load("testdata/nox.env")

	if cfg.App.Name != "FromFile" {
		t.Errorf("App.Name: got %q want FromFile", cfg.App.Name)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format: got %q want json", cfg.Log.Format)
	}
	if !cfg.Nox.DedupeModules {
		t.Error("Nox.DedupeModules should be true")
	}
	want := []string{"ajax", "dom", "events"}
	if !reflect.DeepEqual(cfg.Nox.Modules, want) {
		t.Errorf("Nox.Modules: got %v want %v", cfg.Nox.Modules, want)
	}
}

func TestLoad_MissingFileIsNotFatal(t *testing.T) {
	clearEnv(t)
	cfg := config.Load("testdata/does-not-exist.env")
	if cfg.App.Name != "Nox" {
		t.Errorf("App.Name: got %q want Nox", cfg.App.Name)
	}
}

func TestLoad_AppDebugFalse(t *testing.T) {
	setEnv(t, "APP_DEBUG", "false")
	cfg := config.Load("testdata/empty.env")
	if cfg.App.Debug {
		t.Error("expected App.Debug to be false")
	}
}

// ── AppConfig ────────────────────────────────────────────────────────────────

func TestAppConfig_IsProduction(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"production", true},
		{"Production", true},
		{"local", false},
		{"testing", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := (config.AppConfig{Env: tt.env}).IsProduction(); got != tt.want {
			t.Errorf("IsProduction(%q): got %v want %v", tt.env, got, tt.want)
		}
	}
}
