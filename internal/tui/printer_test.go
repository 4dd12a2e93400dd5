package tui

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinterPlainOnBuffers(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut)
	p.Printf("Q: %s %s\n", p.Trace("a\tb"), p.Debug("hint"))
	p.Errorf("boom: %d", 3)

	if out.String() != "Q: a\tb hint\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
	if errOut.String() != "boom: 3\n" {
		t.Fatalf("unexpected error output %q", errOut.String())
	}
}

func TestPrinterLines(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &out)
	p.Lines("  ", []string{"one", "two"})
	if out.String() != "  one\n  two\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
	if !strings.Contains(p.Info("ok"), "ok") || !strings.Contains(p.Warning("late"), "late") {
		t.Fatalf("styled text lost its content")
	}
}
