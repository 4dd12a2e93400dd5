package vocab

import (
	"strings"
	"testing"

	"github.com/verte-zerg/qwer/internal/generator"
	"github.com/verte-zerg/qwer/internal/model"
	"github.com/verte-zerg/qwer/internal/wordlist"
)

var testWords = []wordlist.Word{
	{Word: "abandon", Pronunciation: "/əˈbændən/", Translation: "give up"},
	{Word: "well being", Pronunciation: "/x/", Translation: "health"},
}

func TestCuratedIgnoresLength(t *testing.T) {
	level := model.NewLevel(model.Curated, 9, 20)
	if level.Length != 0 {
		t.Fatalf("expected curated length 0, got %d", level.Length)
	}
	if level.Key() != "ielts-0-20" {
		t.Fatalf("unexpected level key %q", level.Key())
	}
	src, err := New(level, generator.NewSeeded(3), generator.DefaultCharsets(), testWords)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i := 0; i < 30; i++ {
		item := src.Next()
		if item.Source != model.SourceCurated {
			t.Fatalf("expected curated item, got %v", item.Source)
		}
		if item.Text != "abandon" && item.Text != "well being" {
			t.Fatalf("item %q not from curated list", item.Text)
		}
		if item.Hint == "" {
			t.Fatalf("expected hint for curated item")
		}
	}
}

func TestCuratedRequiresWords(t *testing.T) {
	_, err := New(model.NewLevel(model.Curated, 0, 1), generator.NewSeeded(1), generator.DefaultCharsets(), nil)
	if err == nil {
		t.Fatalf("expected error for empty curated list")
	}
}

func TestGeneratedItems(t *testing.T) {
	level := model.NewLevel(model.Normal, 4, 10)
	src, err := New(level, generator.NewSeeded(5), generator.DefaultCharsets(), testWords)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	item := src.Next()
	if item.Source != model.SourceGenerated {
		t.Fatalf("expected generated item")
	}
	if len([]rune(item.Text)) != 4 {
		t.Fatalf("expected 4 runes, got %q", item.Text)
	}
	if item.Hint != "" {
		t.Fatalf("expected empty hint, got %q", item.Hint)
	}
}

func TestGeneratedRejectsBadConfig(t *testing.T) {
	if _, err := New(model.NewLevel(model.Easy, 0, 10), generator.NewSeeded(1), generator.DefaultCharsets(), nil); err == nil {
		t.Fatalf("expected error for zero length")
	}
	if _, err := New(model.NewLevel(model.Easy, 2, 10), generator.NewSeeded(1), generator.Charsets{}, nil); err == nil {
		t.Fatalf("expected error for missing charset")
	}
}

func TestLookupURLEscapesQuery(t *testing.T) {
	got := LookupURL("well being&co")
	want := "https://dict.youdao.com/result?word=well+being%26co&lang=en"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestHint(t *testing.T) {
	hint := Hint(testWords[0])
	if !strings.HasPrefix(hint, "/əˈbændən/ give up https://dict.youdao.com/") {
		t.Fatalf("unexpected hint %q", hint)
	}
}
