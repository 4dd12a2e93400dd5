package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/qwer/internal/config"
	"github.com/verte-zerg/qwer/internal/ledger"
	"github.com/verte-zerg/qwer/internal/tui"
)

func (a *app) newHistoryCmd() *cobra.Command {
	flags := &historyFlags{}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the ranked score table for a level",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runHistoryCmd(cmd, flags)
		},
	}
	bindLevelFlags(cmd, &flags.levelFlags)
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "print the table instead of opening the browser")
	return cmd
}

func (a *app) runHistoryCmd(cmd *cobra.Command, flags *historyFlags) error {
	envCfg, game, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	applyLevelConfig(cmd, &flags.levelFlags, game)
	level, err := resolveLevel(cmd, flags.levelFlags)
	if err != nil {
		return err
	}
	dir, err := envCfg.HistoryDir()
	if err != nil {
		return err
	}

	path := ledger.Path(dir, level)
	table, err := ledger.New(nil).Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logErrf(a.errOut, "No history for level %s yet. Play with: qwer -d %s -l %d -b %d\n",
				level.Key(), level.Difficulty, flags.length, level.Batch)
			return nil
		}
		return err
	}

	if flags.plain || !isTerminal(a.out) {
		return tui.RenderPlain(a.out, level.Key(), table)
	}
	program := tea.NewProgram(tui.NewHistoryModel(level.Key(), table),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(a.in),
		tea.WithOutput(a.out),
	)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("failed to run history TUI: %w", err)
	}
	return nil
}

func (a *app) newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List levels that have score history",
		Args:  noArgs,
		RunE:  a.runLevelsCmd,
	}
}

func (a *app) runLevelsCmd(cmd *cobra.Command, _ []string) error {
	envCfg, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	dir, err := envCfg.HistoryDir()
	if err != nil {
		return err
	}
	levels, err := ledger.New(nil).Levels(dir)
	if err != nil {
		return err
	}
	if len(levels) == 0 {
		logErrf(a.errOut, "No history found in %s. Play with: qwer\n", dir)
		return nil
	}
	for _, level := range levels {
		if _, err := fmt.Fprintln(a.out, level); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func (a *app) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  noArgs,
		RunE:  a.runConfigCmd,
	}
}

func (a *app) runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeDefaultConfig(path); err != nil {
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
	cmd.Stdin = a.in
	cmd.Stdout = a.out
	cmd.Stderr = a.errOut
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeDefaultConfig creates the config template unless a file exists.
func writeDefaultConfig(path string) error {
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

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# qwer configuration
# Uncomment a value to enable it. QWER_* environment variables override
# these values and CLI flags override both.

[game]
# batch = %d              # Rounds per session
# diff = %q           # easy, normal, hard or ielts
# length = %d              # Random string length while diff != ielts
# name = "someone"        # Gamer name used when the prompt is left empty
# vocab = ""              # Curated word list CSV (WORD,US PRONUNCIATION,TRANSLATE)
`,
		defaultBatch,
		defaultDiff,
		defaultLength,
	)
}
