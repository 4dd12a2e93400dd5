// Package ledger keeps the per-level score history on disk.
//
// A history file is an append-only log of fixed-width rows under a two-line
// header. Ranking is applied when the file is read and never written back.
package ledger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/verte-zerg/qwer/internal/model"
)

const (
	// HeaderTitles is the first header line of every history file.
	HeaderTitles = "| SCORE  | LEVEL          | DATE                | GAMER            |"
	// HeaderSeparator is the second header line of every history file.
	HeaderSeparator = "|--------|----------------|---------------------|------------------|"
	// StagedMarker tags the freshly appended row in displayed views.
	StagedMarker = " <-"
	// Ext is the history file extension.
	Ext = ".md"

	headerLines = 2
)

// ErrMalformedTable is wrapped by IOError when a file lacks its header.
var ErrMalformedTable = errors.New("history table is missing its header")

// IOError reports a history file that could not be created, read or appended to.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("ledger %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// View is what the player sees after a session.
type View struct {
	// Recent holds the two header lines and the staged row.
	Recent []string
	// Ranked holds every data row, staged row included, by descending score.
	Ranked []string
}

// Table is a history file split into header and rows in file order.
type Table struct {
	Header []string
	Rows   []string
}

// Ranked returns the rows sorted by full line content, descending.
func (t Table) Ranked() []string {
	return rank(t.Rows)
}

// Ledger reads and appends history files.
type Ledger struct {
	log *zap.Logger
}

// New returns a Ledger. A nil logger disables logging.
func New(log *zap.Logger) *Ledger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ledger{log: log}
}

// Path returns the history file for a level inside dir.
func Path(dir string, level model.Level) string {
	return filepath.Join(dir, level.Key()+Ext)
}

// EnsureTable creates path with its header unless it already exists.
func (l *Ledger) EnsureTable(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return &IOError{Op: "create", Path: path, Err: err}
	}
	_, werr := file.WriteString(HeaderTitles + "\n" + HeaderSeparator + "\n")
	cerr := file.Close()
	if werr != nil {
		return &IOError{Op: "create", Path: path, Err: werr}
	}
	if cerr != nil {
		return &IOError{Op: "create", Path: path, Err: cerr}
	}
	l.log.Debug("created history table", zap.String("path", path))
	return nil
}

// Read loads a history file without reordering it.
func (l *Ledger) Read(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, &IOError{Op: "read", Path: path, Err: err}
	}
	lines := splitLines(string(data))
	if len(lines) < headerLines {
		return Table{}, &IOError{Op: "read", Path: path, Err: ErrMalformedTable}
	}
	return Table{
		Header: lines[:headerLines],
		Rows:   lines[headerLines:],
	}, nil
}

// AppendAndRank stages entry for display, ranks the table and appends the
// canonical row to the end of path.
func (l *Ledger) AppendAndRank(path string, entry model.LedgerEntry) (View, error) {
	table, err := l.Read(path)
	if err != nil {
		return View{}, err
	}
	line := FormatEntry(entry)
	staged := line + StagedMarker

	recent := make([]string, 0, headerLines+1)
	recent = append(recent, table.Header...)
	recent = append(recent, staged)

	rows := make([]string, 0, len(table.Rows)+1)
	rows = append(rows, table.Rows...)
	rows = append(rows, staged)
	view := View{Recent: recent, Ranked: rank(rows)}

	if err := appendLine(path, line); err != nil {
		return View{}, err
	}
	l.log.Debug("appended history entry",
		zap.String("path", path),
		zap.String("score", entry.Score),
		zap.String("gamer", entry.Gamer),
		zap.Int("rows", len(rows)),
	)
	return view, nil
}

// Levels lists level keys that have a history file in dir.
func (l *Ledger) Levels(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &IOError{Op: "list", Path: dir, Err: err}
	}
	levels := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}
		levels = append(levels, strings.TrimSuffix(entry.Name(), Ext))
	}
	sort.Strings(levels)
	return levels, nil
}

func appendLine(path, line string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return &IOError{Op: "append", Path: path, Err: err}
	}
	if _, err := file.WriteString(line + "\n"); err != nil {
		_ = file.Close()
		return &IOError{Op: "append", Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &IOError{Op: "append", Path: path, Err: err}
	}
	return nil
}

func rank(rows []string) []string {
	out := make([]string, len(rows))
	copy(out, rows)
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}

func splitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
