package ledger

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/verte-zerg/qwer/internal/model"
)

const (
	scoreWidth = 6
	levelWidth = 14
	dateWidth  = 19
	gamerWidth = 16
)

// FormatEntry renders the canonical row for entry.
func FormatEntry(entry model.LedgerEntry) string {
	return fmt.Sprintf("| %s | %-*s | %-*s | %-*s |",
		PadScore(entry.Score),
		levelWidth, entry.Level,
		dateWidth, entry.Date.Format(model.DateLayout),
		gamerWidth, entry.Gamer,
	)
}

// PadScore left-fills a score with zeros to six characters.
func PadScore(score string) string {
	n := utf8.RuneCountInString(score)
	if n >= scoreWidth {
		return score
	}
	return strings.Repeat("0", scoreWidth-n) + score
}

// ParseEntry reads a data row, staged or canonical, back into an entry.
// Dates are interpreted in loc; a nil loc means local time.
func ParseEntry(line string, loc *time.Location) (model.LedgerEntry, error) {
	if loc == nil {
		loc = time.Local
	}
	line = strings.TrimSuffix(strings.TrimRight(line, " "), strings.TrimSpace(StagedMarker))
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "|") || !strings.HasSuffix(line, "|") {
		return model.LedgerEntry{}, fmt.Errorf("malformed row %q", line)
	}
	fields := strings.Split(strings.Trim(line, "|"), "|")
	if len(fields) != 4 {
		return model.LedgerEntry{}, fmt.Errorf("malformed row %q: expected 4 fields, got %d", line, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	date, err := time.ParseInLocation(model.DateLayout, fields[2], loc)
	if err != nil {
		return model.LedgerEntry{}, fmt.Errorf("malformed row date %q: %w", fields[2], err)
	}
	return model.LedgerEntry{
		Score: fields[0],
		Level: fields[1],
		Date:  date,
		Gamer: fields[3],
	}, nil
}

// IsStaged reports whether a displayed row is the session's own entry.
func IsStaged(line string) bool {
	return strings.HasSuffix(line, StagedMarker)
}
