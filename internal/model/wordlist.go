// Package model defines the data structures for passphrase generation.
package model

// Path represents a file system path.
type Path string

// Wordlist is an ordered list of candidate words, loaded once and
// immutable thereafter. Invariant: non-empty, no entry contains
// embedded whitespace.
type Wordlist []string

// Len returns the number of words in the list.
func (w Wordlist) Len() int {
	return len(w)
}

// Word returns the word at index i.
func (w Wordlist) Word(i int) string {
	return w[i]
}

// WordlistStats summarizes a wordlist for the words command.
type WordlistStats struct {
	Words       int     `yaml:"words"`
	MinLength   int     `yaml:"min_length"`
	MaxLength   int     `yaml:"max_length"`
	MeanLength  float64 `yaml:"mean_length"`
	BitsPerWord float64 `yaml:"bits_per_word"`
}
