// Package main provides the CLI entrypoint for typetick.
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

	"github.com/typetick/typetick/internal/config"
	"github.com/typetick/typetick/internal/corpus"
	"github.com/typetick/typetick/internal/model"
	"github.com/typetick/typetick/internal/timer"
	"github.com/typetick/typetick/internal/tui"
)

const (
	defaultTickMs       = 50
	terminalWidthBackup = 80
)

var (
	rootQuotesPath string
	rootTickMs     int

	quotesPath string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typetick",
		Short:         "Terminal typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRootCmd,
	}

	rootCmd.Flags().StringVar(&rootQuotesPath, "quotes", config.DefaultCorpusPath(), "path to the quote archive (.json.gz)")
	rootCmd.Flags().IntVar(&rootTickMs, "tick-ms", defaultTickMs, "timer tick interval in milliseconds")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newQuotesCmd())

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "quotes", &rootQuotesPath, fileCfg.Corpus.Path)
	applyIntConfig(cmd, "tick-ms", &rootTickMs, fileCfg.UI.TickMs)

	cfg := model.Config{
		CorpusPath:   rootQuotesPath,
		TickMs:       rootTickMs,
		CorrectColor: stringValue(fileCfg.UI.CorrectColor),
		PendingColor: stringValue(fileCfg.UI.PendingColor),
		ErrorFg:      stringValue(fileCfg.UI.ErrorFg),
		ErrorBg:      stringValue(fileCfg.UI.ErrorBg),
		HeaderFg:     stringValue(fileCfg.UI.HeaderFg),
		HeaderBg:     stringValue(fileCfg.UI.HeaderBg),
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}

	corp, err := corpus.Load(cfg.CorpusPath)
	if err != nil {
		return corpusLoadError(cfg.CorpusPath, err)
	}

	clock := timer.New(time.Duration(cfg.TickMs) * time.Millisecond)
	defer clock.Stop()

	m := tui.NewModel(corp, clock, tui.NewTheme(cfg))
	program := tea.NewProgram(m, tea.WithAltScreen())

	// The timer callback must never block: Program.Send blocks while an
	// Update is in flight, and Update stops the clock with join semantics.
	// Ticks are coalesced through a buffered channel instead.
	ticks := make(chan struct{}, 1)
	m.SetNotify(func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})
	go func() {
		for range ticks {
			program.Send(tui.TickMsg{})
		}
	}()

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

func newQuotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quotes",
		Short: "Inspect the quote corpus",
		Args:  cobra.NoArgs,
		RunE:  runQuotesCmd,
	}
	cmd.Flags().StringVar(&quotesPath, "quotes", config.DefaultCorpusPath(), "path to the quote archive (.json.gz)")
	return cmd
}

func runQuotesCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "quotes", &quotesPath, fileCfg.Corpus.Path)

	corp, err := corpus.Load(quotesPath)
	if err != nil {
		return corpusLoadError(quotesPath, err)
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "%d quotes in %s\n\n", corp.Len(), quotesPath); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	sample := corp.Random()
	width := terminalWidth()
	if _, err := fmt.Fprintln(out, wrapText(sample.Text, width)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintf(out, "\n%s, %s\n", sample.Author, sample.Title); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	var b strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(text) {
		if lineLen > 0 && lineLen+1+len(word) > width {
			b.WriteByte('\n')
			lineLen = 0
		} else if lineLen > 0 {
			b.WriteByte(' ')
			lineLen++
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}

func corpusLoadError(path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load quote corpus: %v", err),
		fmt.Sprintf("expected archive at: %s", path),
		"The corpus is a gzipped JSON array of [author, title, text, id] records.",
		"Point --quotes (or corpus.path in the config) at an existing archive.",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typetick configuration
# Uncomment a value to enable it. CLI flags override config values.

[ui]
# tick-ms = %d              # Timer tick interval in milliseconds
# correct-color = "#50FA7B" # Correctly typed text
# pending-color = "#8C8C8C" # Untyped text
# error-fg = "#1C1C1C"      # Errored text foreground
# error-bg = "#FF4D4F"      # Errored text background
# header-fg = "#1C1C1C"     # Stats header foreground
# header-bg = "#C678DD"     # Stats header background

[corpus]
# path = %q
`,
		defaultTickMs,
		config.DefaultCorpusPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.TickMs <= 0 {
		return fmt.Errorf("--tick-ms must be > 0")
	}
	if cfg.TickMs > 1000 {
		return fmt.Errorf("--tick-ms must be <= 1000")
	}
	if cfg.CorpusPath == "" {
		return fmt.Errorf("--quotes must not be empty")
	}
	return nil
}
