package model

import "strings"

// Passphrase is an ordered sequence of word tokens drawn from a wordlist.
// It exists only for the duration of one invocation and is never persisted.
type Passphrase []string

// Join renders the passphrase as a single line using the given separator.
func (p Passphrase) Join(separator string) string {
	return strings.Join(p, separator)
}

// CharMutation replaces a single character of a single word.
type CharMutation struct {
	WordIndex   int
	CharIndex   int
	Replacement rune
}

// MutationPlan is a set of single-character substitutions targeting
// distinct words. Invariant: no two entries share a WordIndex, so at most
// one character is altered per word.
type MutationPlan []CharMutation
