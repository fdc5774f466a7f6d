package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"officerdrill/internal/config"
	"officerdrill/internal/exercise"
)

// resetFlags restores the package-level flag values between tests.
func resetFlags(t *testing.T) {
	t.Helper()
	configPath = filepath.Join(t.TempDir(), "config.yaml")
	catalogPath = ""
	darkMode = false
	verbose = false
	showAnswers = false
	plainOutput = false
	t.Setenv("DRILL_CATALOG", "")
	t.Setenv("DRILL_DARK_MODE", "")
	t.Setenv("DRILL_LOG_LEVEL", "")
	t.Setenv("DRILL_DEBUG", "")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCatalogMarkdown(t *testing.T) {
	cat, err := exercise.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}

	md := catalogMarkdown(cat, false)
	for _, want := range []string{
		"# Fire Officer Role Exercise",
		"**Lead the Crew**",
		"### 2. TIC Battery Low",
		"Place 2 cards in each responsibility.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
	if strings.Contains(md, "**Answer:**") {
		t.Error("answers must be hidden by default")
	}

	withAnswers := catalogMarkdown(cat, true)
	if strings.Count(withAnswers, "**Answer:**") != exercise.CardCount {
		t.Errorf("expected one answer per card")
	}
	if !strings.Contains(withAnswers, "Tag/replace battery now") {
		t.Error("expected feedback text with answers")
	}
}

func TestCatalogCommand_Plain(t *testing.T) {
	resetFlags(t)
	out, err := execute(t, "catalog", "--plain", "--answers", "--config", configPath)
	if err != nil {
		t.Fatalf("catalog returned error: %v", err)
	}
	if !strings.Contains(out, "> **Answer:** Maintain Station Readiness") {
		t.Fatalf("expected answers in output, got: %s", out)
	}
}

func TestCatalogCommand_Rendered(t *testing.T) {
	resetFlags(t)
	out, err := execute(t, "catalog", "--config", configPath)
	if err != nil {
		t.Fatalf("catalog returned error: %v", err)
	}
	if !strings.Contains(out, "Fire Officer Role Exercise") {
		t.Fatalf("expected rendered title, got: %s", out)
	}
}

func TestCatalogCommand_BadCatalog(t *testing.T) {
	resetFlags(t)
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("title: broken\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "catalog", "--plain", "--config", configPath, "--catalog", bad); err == nil {
		t.Fatal("expected error for an invalid catalog")
	}
}

func TestVersionCommand(t *testing.T) {
	resetFlags(t)
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version returned error: %v", err)
	}
	if !strings.HasPrefix(out, "drill ") {
		t.Fatalf("unexpected version output: %q", out)
	}
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	resetFlags(t)
	catalogPath = "custom.yaml"
	darkMode = true
	verbose = true

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Exercise.CatalogPath != "custom.yaml" {
		t.Errorf("catalog path = %q", cfg.Exercise.CatalogPath)
	}
	if !cfg.UI.DarkMode {
		t.Error("expected dark mode")
	}
	if !cfg.Logging.DebugMode || cfg.Logging.Level != "debug" {
		t.Errorf("verbose should enable debug logging, got %+v", cfg.Logging)
	}
	if !themeFor(cfg).IsDark {
		t.Error("dark mode config should pick the dark theme")
	}
}

func TestThemeFor_DarkModeEnv(t *testing.T) {
	resetFlags(t)
	t.Setenv("COLORFGBG", "")
	t.Setenv("DRILL_DARK_MODE", "true")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !themeFor(cfg).IsDark {
		t.Error("DRILL_DARK_MODE should reach the theme through config")
	}

	t.Setenv("DRILL_DARK_MODE", "0")
	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if themeFor(cfg).IsDark {
		t.Error("DRILL_DARK_MODE=0 with a light terminal should stay light")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	resetFlags(t)
	cfg := config.DefaultConfig()
	cfg.Logging.Level = "loud"
	if err := cfg.Save(configPath); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(); err == nil {
		t.Fatal("expected invalid log level to fail")
	}
}

func TestSessionSummary(t *testing.T) {
	cat, err := exercise.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	ctrl := exercise.NewController(cat, nil)
	if err := ctrl.Place(1, "lead"); err != nil {
		t.Fatal(err)
	}
	if got := sessionSummary(ctrl); got != "1 of 6 cards placed; answers not checked." {
		t.Errorf("unexpected summary %q", got)
	}
	ctrl.CheckAnswers()
	if got := sessionSummary(ctrl); got != "Score: 1/6" {
		t.Errorf("unexpected summary %q", got)
	}
}
