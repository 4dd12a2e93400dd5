// Package main provides the CLI entrypoint for qwer.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/qwer/internal/config"
	"github.com/verte-zerg/qwer/internal/generator"
	"github.com/verte-zerg/qwer/internal/ledger"
	"github.com/verte-zerg/qwer/internal/model"
	"github.com/verte-zerg/qwer/internal/round"
	"github.com/verte-zerg/qwer/internal/tui"
	"github.com/verte-zerg/qwer/internal/vocab"
	"github.com/verte-zerg/qwer/internal/wordlist"
)

const (
	defaultBatch  = 20
	defaultDiff   = string(model.Curated)
	defaultLength = 1

	farewell     = "Exit The Game ..."
	tableIndent  = "        "
	usageExample = `  qwer
  qwer -b 20 -d ielts
  qwer --batch=20 --diff=ielts
  qwer -l 1 -b 20 -d easy
  qwer --length=1 --batch=20 --diff=easy`
)

// ArgumentError reports a bad flag or flag value.
type ArgumentError struct {
	Cmd *cobra.Command
	Err error
}

func (e *ArgumentError) Error() string {
	return e.Err.Error()
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// levelFlags are shared by commands that address one leaderboard.
type levelFlags struct {
	batch  int
	diff   string
	length int
}

type playFlags struct {
	levelFlags
	vocab   string
	name    string
	verbose bool
}

type historyFlags struct {
	levelFlags
	plain bool
}

// app carries the process streams so commands stay testable.
type app struct {
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	printer *tui.Printer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{in: in, out: out, errOut: errOut, printer: tui.NewPrinter(out, errOut)}
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	return a.exitCode(root.ExecuteContext(ctx))
}

func (a *app) exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, round.ErrInterrupted) {
		a.printer.Printf("\n\n%s\n", farewell)
		return 0
	}
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		a.printer.Errorf("%v", argErr.Err)
		if argErr.Cmd != nil {
			logErrf(a.errOut, "%s", argErr.Cmd.UsageString())
		}
		return 1
	}
	a.printer.Errorf("%v", err)
	return 1
}

func (a *app) newRootCmd() *cobra.Command {
	flags := &playFlags{}
	rootCmd := &cobra.Command{
		Use:           "qwer",
		Short:         "Command line game for typing practice",
		Example:       usageExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPlayCmd(cmd, flags)
		},
	}
	bindLevelFlags(rootCmd, &flags.levelFlags)
	rootCmd.Flags().StringVar(&flags.vocab, "vocab", "", "curated word list CSV (default: bundled list)")
	rootCmd.Flags().StringVar(&flags.name, "name", "", "gamer name used when the name prompt is left empty")
	rootCmd.Flags().BoolVar(&flags.verbose, "verbose", false, "log diagnostics to stderr")
	rootCmd.SetFlagErrorFunc(flagError)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(a.newHistoryCmd())
	rootCmd.AddCommand(a.newLevelsCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	return rootCmd
}

func bindLevelFlags(cmd *cobra.Command, f *levelFlags) {
	cmd.Flags().IntVarP(&f.batch, "batch", "b", defaultBatch, "set batch size")
	cmd.Flags().StringVarP(&f.diff, "diff", "d", defaultDiff, "select game difficulty <easy|normal|hard|ielts>")
	cmd.Flags().IntVarP(&f.length, "length", "l", defaultLength, "length of the random string while diff != ielts")
}

func flagError(cmd *cobra.Command, err error) error {
	return &ArgumentError{Cmd: cmd, Err: err}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &ArgumentError{Cmd: cmd, Err: fmt.Errorf("unexpected argument %q", args[0])}
	}
	return nil
}

func (a *app) runPlayCmd(cmd *cobra.Command, flags *playFlags) error {
	ctx := cmd.Context()
	envCfg, game, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	applyLevelConfig(cmd, &flags.levelFlags, game)
	applyStringConfig(cmd, "vocab", &flags.vocab, game.Vocab)
	applyStringConfig(cmd, "name", &flags.name, game.Name)

	logger, err := newLogger(flags.verbose || envCfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	level, err := resolveLevel(cmd, flags.levelFlags)
	if err != nil {
		return err
	}
	if err := round.ValidateBatchSize(level.Batch); err != nil {
		return err
	}

	var words []wordlist.Word
	if level.Difficulty == model.Curated {
		words, err = loadWords(flags.vocab)
		if err != nil {
			return err
		}
		logger.Debug("loaded vocabulary", zap.Int("words", len(words)), zap.String("vocab", flags.vocab))
	}
	src, err := vocab.New(level, generator.New(), generator.DefaultCharsets(), words)
	if err != nil {
		return &ArgumentError{Cmd: cmd, Err: err}
	}

	dir, err := envCfg.HistoryDir()
	if err != nil {
		return err
	}
	ledg := ledger.New(logger)
	historyPath := ledger.Path(dir, level)
	if err := ledg.EnsureTable(historyPath); err != nil {
		return err
	}
	logger.Debug("history table ready", zap.String("path", historyPath), zap.String("level", level.Key()))

	opts := []round.Option{round.WithLogger(logger)}
	if !isTerminal(a.in) {
		opts = append(opts, round.WithSleep(round.NoSleep))
	}
	runner := round.New(a.in, a.printer, src, opts...)
	if err := runner.Countdown(ctx); err != nil {
		return err
	}
	summary, err := runner.Run(ctx, level)
	if err != nil {
		return err
	}

	a.printer.Println()
	a.printer.Printf("SCORE: %s\n", summary.Score)
	summary.Gamer, err = runner.AskName(ctx, flags.name)
	if err != nil {
		return err
	}

	view, err := ledg.AppendAndRank(historyPath, summary.Entry())
	if err != nil {
		return err
	}
	a.printer.Println("RECENT: ")
	a.printer.Lines(tableIndent, view.Recent)
	a.printer.Println("HISTORY: ")
	a.printer.Lines(tableIndent, view.Recent[:2])
	a.printer.Lines(tableIndent, view.Ranked)
	return nil
}

func loadWords(path string) ([]wordlist.Word, error) {
	if path == "" {
		return wordlist.LoadEmbedded()
	}
	return wordlist.LoadCurated(path)
}

// loadSettings reads the config file and environment, file first.
func loadSettings(cmd *cobra.Command) (config.EnvConfig, config.GameConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.EnvConfig{}, config.GameConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.ParseEnv()
	if err != nil {
		return config.EnvConfig{}, config.GameConfig{}, &ArgumentError{Cmd: cmd, Err: err}
	}
	return envCfg, config.Merge(fileCfg.Game, envCfg), nil
}

func resolveLevel(cmd *cobra.Command, f levelFlags) (model.Level, error) {
	diff, err := model.ParseDifficulty(f.diff)
	if err != nil {
		return model.Level{}, &ArgumentError{Cmd: cmd, Err: err}
	}
	if diff != model.Curated && f.length <= 0 {
		return model.Level{}, &ArgumentError{Cmd: cmd, Err: fmt.Errorf("--length must be > 0")}
	}
	return model.NewLevel(diff, f.length, f.batch), nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func applyLevelConfig(cmd *cobra.Command, f *levelFlags, game config.GameConfig) {
	applyIntConfig(cmd, "batch", &f.batch, game.Batch)
	applyStringConfig(cmd, "diff", &f.diff, game.Diff)
	applyIntConfig(cmd, "length", &f.length, game.Length)
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

func logErrf(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
