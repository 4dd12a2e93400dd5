package ledger

import (
	"testing"
	"time"

	"github.com/verte-zerg/qwer/internal/model"
)

func TestFormatEntryWidths(t *testing.T) {
	entry := model.LedgerEntry{
		Score: "75.00",
		Level: "ielts-0-20",
		Date:  time.Date(2022, 7, 8, 9, 3, 5, 0, time.UTC),
		Gamer: "someone",
	}
	got := FormatEntry(entry)
	want := "| 075.00 | ielts-0-20     | 2022-07-08 09:03:05 | someone          |"
	if got != want {
		t.Fatalf("unexpected row:\n got %q\nwant %q", got, want)
	}
	if len(got) != len(HeaderTitles) {
		t.Fatalf("row width %d does not match header width %d", len(got), len(HeaderTitles))
	}
}

func TestPadScore(t *testing.T) {
	cases := map[string]string{
		"0.00":   "000.00",
		"75.00":  "075.00",
		"100.00": "100.00",
	}
	for in, want := range cases {
		if got := PadScore(in); got != want {
			t.Fatalf("PadScore(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseEntry(t *testing.T) {
	entry := model.LedgerEntry{
		Score: "90.00",
		Level: "hard-4-5",
		Date:  time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC),
		Gamer: "名字 player",
	}
	line := FormatEntry(entry)
	for _, row := range []string{line, line + StagedMarker} {
		got, err := ParseEntry(row, time.UTC)
		if err != nil {
			t.Fatalf("ParseEntry(%q): %v", row, err)
		}
		if got.Score != "090.00" || got.Level != "hard-4-5" || got.Gamer != "名字 player" || !got.Date.Equal(entry.Date) {
			t.Fatalf("unexpected entry %+v", got)
		}
	}
	if _, err := ParseEntry("| nope |", time.UTC); err == nil {
		t.Fatalf("expected error for malformed row")
	}
}
