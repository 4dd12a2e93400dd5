// Package vocab supplies challenge items for a practice session.
package vocab

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/verte-zerg/qwer/internal/generator"
	"github.com/verte-zerg/qwer/internal/model"
	"github.com/verte-zerg/qwer/internal/wordlist"
)

const lookupURLFormat = "https://dict.youdao.com/result?word=%s&lang=en"

// Source yields one challenge per call.
type Source interface {
	Next() model.ChallengeItem
}

// New picks curated or generated mode based on the level's difficulty.
// words is only consulted for curated practice.
func New(level model.Level, gen *generator.Generator, charsets generator.Charsets, words []wordlist.Word) (Source, error) {
	if level.Difficulty == model.Curated {
		return NewCurated(gen, words)
	}
	set, ok := charsets.Lookup(level.Difficulty)
	if !ok {
		return nil, fmt.Errorf("no charset for difficulty %q", level.Difficulty)
	}
	if level.Length <= 0 {
		return nil, fmt.Errorf("length must be > 0 for difficulty %q", level.Difficulty)
	}
	return &Generated{gen: gen, charset: set, length: level.Length}, nil
}

// Curated draws words uniformly, with replacement, from a loaded list.
type Curated struct {
	gen   *generator.Generator
	words []wordlist.Word
}

// NewCurated wraps a loaded list.
func NewCurated(gen *generator.Generator, words []wordlist.Word) (*Curated, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("curated practice needs at least one word")
	}
	return &Curated{gen: gen, words: words}, nil
}

// Next implements Source.
func (c *Curated) Next() model.ChallengeItem {
	w := c.words[c.gen.Intn(len(c.words))]
	return model.ChallengeItem{
		Text:   w.Word,
		Hint:   Hint(w),
		Source: model.SourceCurated,
	}
}

// Generated builds random strings from one alphabet.
type Generated struct {
	gen     *generator.Generator
	charset []rune
	length  int
}

// Next implements Source.
func (g *Generated) Next() model.ChallengeItem {
	return model.ChallengeItem{
		Text:   g.gen.RandomString(g.charset, g.length),
		Source: model.SourceGenerated,
	}
}

// LookupURL returns the dictionary page for a word. It is only displayed.
func LookupURL(word string) string {
	return fmt.Sprintf(lookupURLFormat, url.QueryEscape(word))
}

// Hint joins pronunciation, translation and lookup link.
func Hint(w wordlist.Word) string {
	return strings.Join([]string{w.Pronunciation, w.Translation, LookupURL(w.Word)}, " ")
}
