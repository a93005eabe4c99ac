package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"

	"github.com/printworks/printbot/internal/core"
)

// resetGlobals restores the package state mutated by Initialize and the path
// overrides it applies.
func resetGlobals(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		globalConfig = Config{
			Log: logx.LoggingConfig{
				Level:          "Debug",
				ConsoleLogging: true,
				FileLogging:    false,
			},
			Sentry: SentryConfig{
				Enabled:     false,
				Environment: "production",
			},
		}
		core.SetHomeDir("/opt/printbot")
		core.SetTempDir("/tmp/printbot")
	})
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestInitialize_AppliesPathOverrides(t *testing.T) {
	resetGlobals(t)

	home := filepath.Join(t.TempDir(), "printbot")
	yamlCfg := `
log:
  level: "Info"
paths:
  home: "` + home + `"
`
	if err := Initialize(writeConfigFile(t, yamlCfg)); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if got := Get().Paths.Home; got != home {
		t.Fatalf("expected home %q, got %q", home, got)
	}
	if core.HomeDir != home {
		t.Fatalf("expected derived home dir %q, got %q", home, core.HomeDir)
	}
	if want := filepath.Join(home, "etc", "printbot.env"); core.SecretsFile != want {
		t.Fatalf("expected derived secrets file %q, got %q", want, core.SecretsFile)
	}
	if got := Get().Log.Level; got != "Info" {
		t.Fatalf("expected log level Info, got %q", got)
	}
}

func TestInitialize_EnvOverride_TempPath(t *testing.T) {
	resetGlobals(t)

	yamlCfg := `
log:
  level: "Info"
paths:
  temp: "/tmp/printbot-from-file"
`
	envKey := "PRINTBOT_PATHS_TEMP"
	expected := "/tmp/printbot-from-env"
	orig := os.Getenv(envKey)
	if err := os.Setenv(envKey, expected); err != nil {
		t.Fatalf("set env: %v", err)
	}
	defer func() {
		_ = os.Setenv(envKey, orig)
	}()

	if err := Initialize(writeConfigFile(t, yamlCfg)); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	// verify the env variable value took precedence
	if got := Get().Paths.Temp; got != expected {
		t.Fatalf("env override failed: expected %q, got %q", expected, got)
	}
	if core.TempDir != expected {
		t.Fatalf("expected derived temp dir %q, got %q", expected, core.TempDir)
	}
}

func TestInitialize_MissingFile(t *testing.T) {
	resetGlobals(t)

	err := Initialize(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing config file")
	}
	if !errorx.IsOfType(err, NotFoundError) {
		t.Fatalf("expected not_found error, got %v", err)
	}
}

func TestInitialize_InvalidHomePath(t *testing.T) {
	resetGlobals(t)

	yamlCfg := `
paths:
  home: "../relative/escape"
`
	err := Initialize(writeConfigFile(t, yamlCfg))
	if err == nil {
		t.Fatalf("expected error for invalid home path")
	}
}

func TestInitialize_EmptyPathIsNoop(t *testing.T) {
	resetGlobals(t)

	before := Get()
	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize with empty path failed: %v", err)
	}
	if Get() != before {
		t.Fatalf("expected configuration to be unchanged")
	}
}

func TestSet_RejectsNilAndInvalid(t *testing.T) {
	resetGlobals(t)

	if err := Set(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}

	bad := &Config{Sentry: SentryConfig{Enabled: true}}
	if err := Set(bad); err == nil {
		t.Fatalf("expected error for enabled sentry without dsn")
	}
}
