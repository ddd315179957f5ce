package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/pwscore/internal/config"
)

func setupXDG(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
}

func runRoot(t *testing.T, input string, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestRootRunsPlainLoopOnPipedInput(t *testing.T) {
	setupXDG(t)
	out := runRoot(t, "aaaaaaa\nexit\n")
	for _, want := range []string{"Password Strength Analyzer", "SCORE: 20", "too short"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(config.DefaultDBPath()); !os.IsNotExist(err) {
		t.Fatalf("history db should not exist without --record")
	}
}

func TestRecordThenStats(t *testing.T) {
	setupXDG(t)
	runRoot(t, "aaaaaaa\nAa1!aaaaaaaa\nPassword\n", "--record")

	out := runRoot(t, "", "stats", "--window", "2")
	for _, want := range []string{"Checks: 3", "Best Score: 110", "Strong", "Very Weak", "Score Trend (window 2)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestRecordFromConfigFile(t *testing.T) {
	setupXDG(t)
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("[check]\nrecord = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	runRoot(t, "Aa1!aaaaaaa\n")
	if _, err := os.Stat(config.DefaultDBPath()); err != nil {
		t.Fatalf("expected history db from config: %v", err)
	}

	if err := os.Remove(config.DefaultDBPath()); err != nil {
		t.Fatalf("remove db: %v", err)
	}
	runRoot(t, "Aa1!aaaaaaa\n", "--record=false")
	if _, err := os.Stat(config.DefaultDBPath()); !os.IsNotExist(err) {
		t.Fatalf("flag should override config")
	}
}

func TestStatsEmptyHistory(t *testing.T) {
	setupXDG(t)
	out := runRoot(t, "", "stats")
	if !strings.Contains(out, "No checks recorded") {
		t.Fatalf("expected empty notice:\n%s", out)
	}
}

func TestStatsRejectsBadFlags(t *testing.T) {
	setupXDG(t)
	for _, args := range [][]string{
		{"stats", "--since", "yesterday"},
		{"stats", "--last", "-1"},
		{"stats", "--window", "0"},
	} {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		if err := cmd.Execute(); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	setupXDG(t)
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		t.Fatalf("ensure config: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if cfg.Check.Mask != nil || cfg.Check.Record != nil || cfg.Check.Plain != nil {
		t.Fatalf("template values should be commented out: %+v", cfg)
	}
}
