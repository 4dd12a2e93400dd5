// Package model defines shared data structures.
package model

import (
	"fmt"
	"time"
)

// Difficulty names a practice mode.
type Difficulty string

// Known difficulties. Curated is the only one backed by a word list.
const (
	Easy    Difficulty = "easy"
	Normal  Difficulty = "normal"
	Hard    Difficulty = "hard"
	Curated Difficulty = "ielts"
)

// Difficulties lists every accepted difficulty in display order.
var Difficulties = []Difficulty{Easy, Normal, Hard, Curated}

// ParseDifficulty validates a difficulty name.
func ParseDifficulty(name string) (Difficulty, error) {
	for _, d := range Difficulties {
		if string(d) == name {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or ielts)", name)
}

// Level identifies one leaderboard.
type Level struct {
	Difficulty Difficulty
	Length     int
	Batch      int
}

// NewLevel builds a level, forcing length to 0 for curated practice.
func NewLevel(diff Difficulty, length, batch int) Level {
	if diff == Curated {
		length = 0
	}
	return Level{Difficulty: diff, Length: length, Batch: batch}
}

// Key returns the <difficulty>-<length>-<batch> identifier.
func (l Level) Key() string {
	return fmt.Sprintf("%s-%d-%d", l.Difficulty, l.Length, l.Batch)
}

// ItemSource tells where a challenge came from.
type ItemSource int

const (
	SourceCurated ItemSource = iota
	SourceGenerated
)

func (s ItemSource) String() string {
	switch s {
	case SourceCurated:
		return "curated"
	case SourceGenerated:
		return "generated"
	default:
		return "unknown"
	}
}

// ChallengeItem is one unit the player must type.
type ChallengeItem struct {
	Text   string
	Hint   string
	Source ItemSource
}

// RoundResult captures a completed round.
type RoundResult struct {
	Item     ChallengeItem
	Attempts int
	Elapsed  time.Duration
	Passed   bool
}

// DefaultGamer is stored when the player gives no name.
const DefaultGamer = "someone"

// MaxGamerLen is the rune limit of a stored gamer name.
const MaxGamerLen = 16

// GamerName applies the default and truncation rules to a typed name.
func GamerName(input, fallback string) string {
	name := input
	if name == "" {
		name = fallback
	}
	if name == "" {
		name = DefaultGamer
	}
	runes := []rune(name)
	if len(runes) > MaxGamerLen {
		runes = runes[:MaxGamerLen]
	}
	return string(runes)
}

// SessionSummary aggregates a batch of rounds.
type SessionSummary struct {
	Gain      int
	Loss      int
	Score     string
	Level     Level
	Timestamp time.Time
	Gamer     string
	Rounds    []RoundResult
}

// LedgerEntry is one row of a history table.
type LedgerEntry struct {
	Score string
	Level string
	Date  time.Time
	Gamer string
}

// DateLayout formats ledger dates.
const DateLayout = "2006-01-02 15:04:05"

// Entry converts a finished session to a ledger row.
func (s SessionSummary) Entry() LedgerEntry {
	return LedgerEntry{
		Score: s.Score,
		Level: s.Level.Key(),
		Date:  s.Timestamp,
		Gamer: s.Gamer,
	}
}
