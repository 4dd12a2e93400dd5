package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/qwer/internal/ledger"
	"github.com/verte-zerg/qwer/internal/model"
)

func historyTable() ledger.Table {
	row := func(score string, minute int) string {
		return ledger.FormatEntry(model.LedgerEntry{
			Score: score,
			Level: "easy-1-20",
			Date:  time.Date(2022, 7, 8, 9, minute, 0, 0, time.Local),
			Gamer: "ann",
		})
	}
	return ledger.Table{
		Header: []string{ledger.HeaderTitles, ledger.HeaderSeparator},
		Rows:   []string{row("50.00", 1), row("100.00", 2), "garbage", row("75.00", 3)},
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize("easy-1-20", historyTable())
	if len(sum.Entries) != 3 || sum.Skipped != 1 {
		t.Fatalf("expected 3 entries and 1 skipped, got %d/%d", len(sum.Entries), sum.Skipped)
	}
	if sum.Best != "100.00" || sum.Entries[2].Score != "050.00" {
		t.Fatalf("unexpected ranking: %+v", sum.Entries)
	}
	if sum.Trend != " @+" {
		t.Fatalf("unexpected trend %q", sum.Trend)
	}
}

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPlain(&buf, "easy-1-20", historyTable()); err != nil {
		t.Fatalf("RenderPlain: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if lines[0] != "HISTORY easy-1-20" {
		t.Fatalf("unexpected title %q", lines[0])
	}
	if strings.TrimSpace(lines[1]) != ledger.HeaderTitles {
		t.Fatalf("expected header, got %q", lines[1])
	}
	if !strings.Contains(lines[3], "100.00") {
		t.Fatalf("expected best score first, got %q", lines[3])
	}
}

func TestHistoryModelView(t *testing.T) {
	m := NewHistoryModel("easy-1-20", historyTable())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	view := next.View()
	for _, want := range []string{"HISTORY easy-1-20", "Sessions 3", "Best 100.00", "unreadable"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	_, cmd := next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}

func TestHistoryModelEmpty(t *testing.T) {
	m := NewHistoryModel("hard-2-5", ledger.Table{Header: []string{ledger.HeaderTitles, ledger.HeaderSeparator}})
	if !strings.Contains(m.View(), "No sessions recorded") {
		t.Fatalf("expected empty notice")
	}
}
