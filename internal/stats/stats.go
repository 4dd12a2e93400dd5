// Package stats contains score calculations.
package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/verte-zerg/qwer/internal/model"
)

const sparkChars = " .:-=+*#%@"

// graceAllowance is added to the per-rune allowance of one second.
const graceAllowance = 500 * time.Millisecond

// Threshold is the longest a round may take and still count as a gain.
func Threshold(text string) time.Duration {
	return time.Duration(utf8.RuneCountInString(text))*time.Second + graceAllowance
}

// Passed reports whether elapsed beats the threshold for text.
func Passed(elapsed time.Duration, text string) bool {
	return elapsed < Threshold(text)
}

// Score formats 100*gain/(gain+loss) with two decimals.
func Score(gain, loss int) string {
	total := gain + loss
	if total <= 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(gain*100)/float64(total))
}

// Tally counts gains and losses in a batch of rounds.
func Tally(rounds []model.RoundResult) (gain, loss int) {
	for _, r := range rounds {
		if r.Passed {
			gain++
		} else {
			loss++
		}
	}
	return gain, loss
}

// ParseScore reads a ledger score field such as "075.00".
func ParseScore(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid score %q: %w", s, err)
	}
	return v, nil
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// LastN keeps the trailing n values, or all of them when n <= 0.
func LastN(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}
