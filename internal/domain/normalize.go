package domain

import (
	"regexp"
	"strings"
)

// MaxWordLength is the longest word (after trimming) the pipeline accepts.
const MaxWordLength = 50

var wordPattern = regexp.MustCompile(`^[a-zA-Z'-]+$`)

// IsWellFormedWord reports whether an already-trimmed word consists only of
// ASCII letters, apostrophes and hyphens and fits in MaxWordLength.
func IsWellFormedWord(word string) bool {
	if word == "" || len(word) > MaxWordLength {
		return false
	}
	return wordPattern.MatchString(word)
}

// NormalizeWord trims surrounding whitespace and lowercases the word.
// Apostrophes and hyphens are preserved.
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
