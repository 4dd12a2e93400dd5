package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/qwer/internal/ledger"
	"github.com/verte-zerg/qwer/internal/model"
	"github.com/verte-zerg/qwer/internal/stats"
)

const sparkWindow = 40

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	sparkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// HistorySummary is the data shown above a ranked table.
type HistorySummary struct {
	Level   string
	Entries []model.LedgerEntry
	Best    string
	Trend   string
	Skipped int
}

// Summarize parses a history table into entries ranked best first and a
// score trend in file order.
func Summarize(level string, t ledger.Table) HistorySummary {
	sum := HistorySummary{Level: level}
	for _, row := range t.Ranked() {
		entry, err := ledger.ParseEntry(row, nil)
		if err != nil {
			sum.Skipped++
			continue
		}
		sum.Entries = append(sum.Entries, entry)
	}
	if len(sum.Entries) > 0 {
		sum.Best = sum.Entries[0].Score
	}
	values := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		entry, err := ledger.ParseEntry(row, nil)
		if err != nil {
			continue
		}
		v, err := stats.ParseScore(entry.Score)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	sum.Trend = stats.Sparkline(stats.LastN(values, sparkWindow))
	return sum
}

// RenderPlain writes the ranked history without a TUI.
func RenderPlain(w io.Writer, level string, t ledger.Table) error {
	if _, err := fmt.Fprintf(w, "HISTORY %s\n", level); err != nil {
		return err
	}
	lines := make([]string, 0, len(t.Header)+len(t.Rows))
	lines = append(lines, t.Header...)
	lines = append(lines, t.Ranked()...)
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "        %s\n", line); err != nil {
			return err
		}
	}
	return nil
}

// HistoryModel implements the Bubble Tea history browser.
type HistoryModel struct {
	summary HistorySummary
	table   table.Model

	width  int
	height int
}

// NewHistoryModel constructs a history browser for one level.
func NewHistoryModel(level string, t ledger.Table) *HistoryModel {
	m := &HistoryModel{summary: Summarize(level, t)}
	m.table = buildHistoryTable(m.summary.Entries, 10)
	return m
}

// Init implements tea.Model.
func (m *HistoryModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(maxInt(1, msg.Height-m.chromeHeight()))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "g", "home":
			m.table.GotoTop()
			return m, nil
		case "G", "end":
			m.table.GotoBottom()
			return m, nil
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *HistoryModel) View() string {
	parts := []string{m.renderHeader()}
	if len(m.summary.Entries) == 0 {
		parts = append(parts, headerStyle.Render("No sessions recorded for this level yet."))
	} else {
		parts = append(parts, m.table.View())
	}
	parts = append(parts, footerStyle.Render("↑/↓ scroll · g/G top/bottom · q quit"))
	return strings.Join(parts, "\n")
}

func (m *HistoryModel) chromeHeight() int {
	return lipgloss.Height(m.renderHeader()) + 2
}

func (m *HistoryModel) renderHeader() string {
	lines := []string{titleStyle.Render("HISTORY " + m.summary.Level)}
	meta := fmt.Sprintf("Sessions %d", len(m.summary.Entries))
	if m.summary.Best != "" {
		meta += "  Best " + m.summary.Best
	}
	lines = append(lines, headerStyle.Render(meta))
	if m.summary.Trend != "" {
		lines = append(lines, headerStyle.Render("Trend ")+sparkStyle.Render(m.summary.Trend))
	}
	if m.summary.Skipped > 0 {
		lines = append(lines, errorStyle.Render(fmt.Sprintf("%d unreadable rows skipped", m.summary.Skipped)))
	}
	return strings.Join(lines, "\n")
}

func buildHistoryTable(entries []model.LedgerEntry, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "SCORE", Width: 6},
		{Title: "DATE", Width: 19},
		{Title: "GAMER", Width: model.MaxGamerLen},
	}
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			e.Score,
			e.Date.Format(model.DateLayout),
			e.Gamer,
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height)),
		table.WithFocused(true),
	)
	t.SetStyles(historyTableStyles())
	return t
}

func historyTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
