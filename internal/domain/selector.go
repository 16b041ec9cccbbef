// Package domain provides the core passphrase generation logic:
// uniform word selection, bounded character mutation, and entropy
// estimation.
package domain

import (
	"fmt"

	"dicepass.dev/pkg/dicepass/internal/adapter"
	m "dicepass.dev/pkg/dicepass/internal/model"
)

// selectWords draws count words from the wordlist, each independently and
// uniformly, with replacement. Duplicate words across positions are
// allowed and not corrected.
func selectWords(wordlist m.Wordlist, count int, rand adapter.RandSource) (m.Passphrase, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: word count must be positive, got %d", m.ErrInvalidCount, count)
	}

	words := make(m.Passphrase, 0, count)

	for i := 0; i < count; i++ {
		idx, err := rand.UniformIndex(wordlist.Len())
		if err != nil {
			return nil, fmt.Errorf("draw word %d: %w", i, err)
		}

		words = append(words, wordlist.Word(idx))
	}

	return words, nil
}
