package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoadCurated(t *testing.T) {
	path := writeCSV(t, "WORD,US PRONUNCIATION,TRANSLATE\nabandon,/əˈbændən/,v. give up\n\"one, two\",/x/,pair\n")
	words, err := LoadCurated(path)
	if err != nil {
		t.Fatalf("LoadCurated failed: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
	if words[0].Word != "abandon" || words[0].Pronunciation != "/əˈbændən/" || words[0].Translation != "v. give up" {
		t.Fatalf("unexpected first word: %+v", words[0])
	}
	if words[1].Word != "one, two" {
		t.Fatalf("expected quoted field to survive, got %q", words[1].Word)
	}
}

func TestLoadCuratedColumnOrder(t *testing.T) {
	path := writeCSV(t, "TRANSLATE,WORD,EXTRA,US PRONUNCIATION\nsea,ocean,x,/ˈoʊʃn/\n")
	words, err := LoadCurated(path)
	if err != nil {
		t.Fatalf("LoadCurated failed: %v", err)
	}
	if words[0].Word != "ocean" || words[0].Translation != "sea" || words[0].Pronunciation != "/ˈoʊʃn/" {
		t.Fatalf("unexpected word: %+v", words[0])
	}
}

func TestLoadCuratedMissingFile(t *testing.T) {
	_, err := LoadCurated(filepath.Join(t.TempDir(), "nope.csv"))
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist cause, got %v", err)
	}
}

func TestLoadCuratedMissingColumn(t *testing.T) {
	path := writeCSV(t, "WORD,TRANSLATE\nabandon,give up\n")
	_, err := LoadCurated(path)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected missing column error, got %v", err)
	}
}

func TestLoadCuratedShortRow(t *testing.T) {
	path := writeCSV(t, "WORD,US PRONUNCIATION,TRANSLATE\nabandon\n")
	_, err := LoadCurated(path)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
}

func TestLoadCuratedEmpty(t *testing.T) {
	for _, content := range []string{"", "WORD,US PRONUNCIATION,TRANSLATE\n", "WORD,US PRONUNCIATION,TRANSLATE\n  ,x,y\n"} {
		path := writeCSV(t, content)
		if _, err := LoadCurated(path); !errors.Is(err, ErrEmpty) {
			t.Fatalf("expected empty error for %q, got %v", content, err)
		}
	}
}

func TestLoadEmbedded(t *testing.T) {
	words, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded failed: %v", err)
	}
	if len(words) < 10 {
		t.Fatalf("expected a usable embedded list, got %d words", len(words))
	}
	for _, w := range words {
		if w.Word == "" {
			t.Fatalf("embedded list contains an empty word")
		}
	}
}
