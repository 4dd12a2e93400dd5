// Package round runs timed typing rounds and tallies a session.
package round

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/verte-zerg/qwer/internal/model"
	"github.com/verte-zerg/qwer/internal/stats"
	"github.com/verte-zerg/qwer/internal/tui"
	"github.com/verte-zerg/qwer/internal/vocab"
)

const (
	promptWidth = 20
	indent      = "      "
)

var countdownSteps = []string{"3", "2", "1", "Go"}

var (
	// ErrInvalidBatchSize is returned before any round when batch <= 0.
	ErrInvalidBatchSize = errors.New("batch size must be > 0")
	// ErrInterrupted is returned when ctx ends while waiting for input.
	ErrInterrupted = errors.New("interrupted")
	// ErrInputClosed is returned when input ends before a round completes.
	ErrInputClosed = errors.New("input closed")
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Runner drives a practice session.
type Runner struct {
	lines *lineReader
	out   *tui.Printer
	src   vocab.Source
	now   func() time.Time
	sleep SleepFunc
	log   *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// WithSleep replaces the countdown delay.
func WithSleep(sleep SleepFunc) Option {
	return func(r *Runner) { r.sleep = sleep }
}

// WithLogger sets a diagnostic logger.
func WithLogger(log *zap.Logger) Option {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// New builds a Runner reading submissions line by line from in.
func New(in io.Reader, out *tui.Printer, src vocab.Source, opts ...Option) *Runner {
	r := &Runner{
		lines: newLineReader(in),
		out:   out,
		src:   src,
		now:   time.Now,
		sleep: sleepContext,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NoSleep skips delays.
func NoSleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// ValidateBatchSize rejects batches that cannot produce a score.
func ValidateBatchSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidBatchSize, n)
	}
	return nil
}

// Countdown prints the pre-session countdown, one second per step.
func (r *Runner) Countdown(ctx context.Context) error {
	for _, step := range countdownSteps {
		r.out.Printf("%-2s!\n", step)
		if err := r.sleep(ctx, time.Second); err != nil {
			return r.wrapInput(err)
		}
	}
	r.out.Println()
	return nil
}

// Run plays level.Batch rounds and returns the tallied session.
// The returned summary has no gamer name yet; see AskName.
func (r *Runner) Run(ctx context.Context, level model.Level) (model.SessionSummary, error) {
	if err := ValidateBatchSize(level.Batch); err != nil {
		return model.SessionSummary{}, err
	}
	rounds := make([]model.RoundResult, 0, level.Batch)
	for i := 1; i <= level.Batch; i++ {
		res, err := r.playRound(ctx, i)
		if err != nil {
			return model.SessionSummary{}, err
		}
		rounds = append(rounds, res)
	}
	gain, loss := stats.Tally(rounds)
	summary := model.SessionSummary{
		Gain:      gain,
		Loss:      loss,
		Score:     stats.Score(gain, loss),
		Level:     level,
		Timestamp: r.now(),
		Rounds:    rounds,
	}
	r.log.Debug("session complete",
		zap.String("level", level.Key()),
		zap.Int("gain", gain),
		zap.Int("loss", loss),
		zap.String("score", summary.Score),
	)
	return summary, nil
}

// AskName prompts for the gamer name of a finished session.
func (r *Runner) AskName(ctx context.Context, fallback string) (string, error) {
	r.out.Printf("YOUR NAME: ")
	line, err := r.lines.read(ctx)
	if err != nil {
		return "", r.wrapInput(err)
	}
	return model.GamerName(line, fallback), nil
}

func (r *Runner) playRound(ctx context.Context, index int) (model.RoundResult, error) {
	item := r.src.Next()
	r.out.Printf("[%3d]\n", index)

	hint := item.Hint
	attempts := 0
	begin := r.now()
	for {
		r.out.Printf("%sQ: %s %s\n", indent, r.out.Trace(runewidth.FillRight(item.Text, promptWidth)), r.out.Debug(hint))
		r.out.Printf("%sA: ", indent)
		answer, err := r.lines.read(ctx)
		if err != nil {
			return model.RoundResult{}, r.wrapInput(err)
		}
		if answer == item.Text {
			break
		}
		attempts++
		hint = ""
	}
	elapsed := r.now().Sub(begin)
	passed := stats.Passed(elapsed, item.Text)

	shown := elapsed.Round(time.Millisecond).String()
	if passed {
		shown = r.out.Info(shown)
	} else {
		shown = r.out.Warning(shown)
	}
	r.out.Printf("%sT: %s\n", indent, shown)

	r.log.Debug("round complete",
		zap.Int("round", index),
		zap.String("source", item.Source.String()),
		zap.Int("attempts", attempts),
		zap.Duration("elapsed", elapsed),
		zap.Bool("passed", passed),
	)
	return model.RoundResult{
		Item:     item,
		Attempts: attempts,
		Elapsed:  elapsed,
		Passed:   passed,
	}, nil
}

func (r *Runner) wrapInput(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: %w", ErrInputClosed, err)
	default:
		return fmt.Errorf("failed to read input: %w", err)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
