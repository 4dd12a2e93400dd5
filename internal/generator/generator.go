// Package generator builds random practice strings.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/qwer/internal/model"
)

const (
	lowercase   = "abcdefghijklmnopqrstuvwxyz"
	uppercase   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits      = "0123456789"
	homeRow     = ",./;"
	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	whitespace  = " \t"
)

// Charsets maps each generated difficulty to its alphabet.
type Charsets map[model.Difficulty][]rune

// DefaultCharsets returns a fresh copy of the built-in alphabets.
func DefaultCharsets() Charsets {
	return Charsets{
		model.Easy:   []rune(lowercase + homeRow),
		model.Normal: []rune(lowercase + uppercase + digits + homeRow),
		model.Hard:   []rune(digits + lowercase + uppercase + punctuation + whitespace),
	}
}

// Lookup returns the alphabet for a difficulty.
func (c Charsets) Lookup(diff model.Difficulty) ([]rune, bool) {
	set, ok := c[diff]
	if !ok || len(set) == 0 {
		return nil, false
	}
	return set, true
}

// Generator produces randomized typing text.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a deterministic Generator.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// RandomString draws length runes uniformly, with replacement, from charset.
func (g *Generator) RandomString(charset []rune, length int) string {
	if length <= 0 || len(charset) == 0 {
		return ""
	}
	out := make([]rune, length)
	for i := range out {
		out[i] = charset[g.rnd.Intn(len(charset))]
	}
	return string(out)
}

// Intn exposes the generator's source for uniform index picks.
func (g *Generator) Intn(n int) int {
	return g.rnd.Intn(n)
}
