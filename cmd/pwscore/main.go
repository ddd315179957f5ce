// Package main provides the CLI entrypoint for pwscore.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/pwscore/internal/analyzer"
	"github.com/verte-zerg/pwscore/internal/config"
	"github.com/verte-zerg/pwscore/internal/history"
	"github.com/verte-zerg/pwscore/internal/model"
	"github.com/verte-zerg/pwscore/internal/prompt"
	"github.com/verte-zerg/pwscore/internal/stats"
	"github.com/verte-zerg/pwscore/internal/store"
	"github.com/verte-zerg/pwscore/internal/tui"
	"github.com/verte-zerg/pwscore/internal/weaklist"
)

const (
	defaultMask        = true
	defaultRecord      = false
	defaultPlain       = false
	defaultTrendWindow = 10
)

var (
	checkMask   bool
	checkRecord bool
	checkPlain  bool

	statsSince  string
	statsLast   int
	statsWindow int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pwscore",
		Short:         "Interactive password strength analyzer",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runCheckCmd,
	}

	rootCmd.Flags().BoolVar(&checkMask, "mask", defaultMask, "hide typed passwords in the terminal UI")
	rootCmd.Flags().BoolVar(&checkRecord, "record", defaultRecord, "keep score history (password text is never stored)")
	rootCmd.Flags().BoolVar(&checkPlain, "plain", defaultPlain, "use the line-based prompt even on a terminal")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runCheckCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "mask", &checkMask, fileCfg.Check.Mask)
	applyBoolConfig(cmd, "record", &checkRecord, fileCfg.Check.Record)
	applyBoolConfig(cmd, "plain", &checkPlain, fileCfg.Check.Plain)

	cfg := model.Config{
		Mask:   checkMask,
		Record: checkRecord,
		Plain:  checkPlain,
	}

	a := analyzer.New(weaklist.Default())

	var rec *history.Recorder
	if cfg.Record {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
		rec = history.NewRecorder(st)
	}

	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	if cfg.Plain || !isTerminal(in) || !isTerminal(out) {
		return prompt.Run(cmd.Context(), in, out, prompt.Options{
			Analyzer: a,
			Recorder: rec,
			OnRecordError: func(err error) {
				logErrf("%v\n", err)
			},
		})
	}

	program := tea.NewProgram(tui.NewModel(cfg, a, rec), tea.WithInput(in), tea.WithOutput(out))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show recorded score history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N checks")
	cmd.Flags().IntVar(&statsWindow, "window", defaultTrendWindow, "moving average window for the trend")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := statsConfig()
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	report, err := stats.BuildReport(cmd.Context(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	if err := stats.WriteReport(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func statsConfig() (model.StatsConfig, error) {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return model.StatsConfig{}, fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if statsLast < 0 {
		return model.StatsConfig{}, fmt.Errorf("--last must be >= 0")
	}
	if statsWindow <= 0 {
		return model.StatsConfig{}, fmt.Errorf("--window must be > 0")
	}
	return model.StatsConfig{
		Since:  sinceTime,
		Last:   statsLast,
		Window: statsWindow,
	}, nil
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# pwscore configuration
# Uncomment a value to enable it. CLI flags override config values.
# Scoring rules and the weak-password list are built in and cannot be changed here.

[check]
# mask = %t      # Hide typed passwords in the terminal UI
# record = %t   # Keep score history (password text is never stored)
# plain = %t    # Use the line-based prompt even on a terminal
`,
		defaultMask,
		defaultRecord,
		defaultPlain,
	)
}

func isTerminal(v any) bool {
	file, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
