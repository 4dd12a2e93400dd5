// Package wordlist provides word list filtering helpers.
package wordlist

import (
	"strings"
	"unicode"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterTypeable keeps words a player can reproduce on one input line.
func FilterTypeable() FilterFunc {
	return filterTypeable
}

func filterTypeable(word string) bool {
	if strings.TrimSpace(word) == "" {
		return false
	}
	if word != strings.TrimSpace(word) {
		return false
	}
	for _, r := range word {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
