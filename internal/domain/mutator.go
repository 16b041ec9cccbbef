package domain

import (
	"fmt"
	"sort"

	"dicepass.dev/pkg/dicepass/internal/adapter"
	m "dicepass.dev/pkg/dicepass/internal/model"
)

// mutationAlphabet is the flattened 6x6 diceware symbol grid. A mutated
// character is drawn uniformly from these 36 runes.
var mutationAlphabet = []rune(`~!#$%^&*()-=+[]\{}:;"'<>?/0123456789`)

// buildMutationPlan chooses count distinct word positions uniformly
// without replacement, and for each a character index and replacement
// rune. Colliding position draws are re-rolled until count distinct
// positions exist, so at most one character is ever altered per word.
func buildMutationPlan(words m.Passphrase, count int, rand adapter.RandSource) (m.MutationPlan, error) {
	if count < 0 || count > len(words) {
		return nil, fmt.Errorf("%w: mutation count must be in [0, %d], got %d", m.ErrInvalidCount, len(words), count)
	}

	chosen := make(map[int]struct{}, count)
	for len(chosen) < count {
		idx, err := rand.UniformIndex(len(words))
		if err != nil {
			return nil, fmt.Errorf("draw word position: %w", err)
		}

		chosen[idx] = struct{}{}
	}

	positions := make([]int, 0, len(chosen))
	for idx := range chosen {
		positions = append(positions, idx)
	}

	// Deterministic plan order given the draw sequence.
	sort.Ints(positions)

	plan := make(m.MutationPlan, 0, count)

	for _, wordIdx := range positions {
		runes := []rune(words[wordIdx])

		charIdx, err := rand.UniformIndex(len(runes))
		if err != nil {
			return nil, fmt.Errorf("draw character position in %q: %w", words[wordIdx], err)
		}

		replacement, err := rand.UniformChar(mutationAlphabet)
		if err != nil {
			return nil, fmt.Errorf("draw replacement character: %w", err)
		}

		plan = append(plan, m.CharMutation{
			WordIndex:   wordIdx,
			CharIndex:   charIdx,
			Replacement: replacement,
		})
	}

	return plan, nil
}

// applyMutationPlan returns a copy of words with the plan applied. The
// input sequence is not modified. Replacement is rune-based so non-ASCII
// dictionary words stay intact.
func applyMutationPlan(words m.Passphrase, plan m.MutationPlan) m.Passphrase {
	mutated := make(m.Passphrase, len(words))
	copy(mutated, words)

	for _, mutation := range plan {
		runes := []rune(mutated[mutation.WordIndex])
		runes[mutation.CharIndex] = mutation.Replacement
		mutated[mutation.WordIndex] = string(runes)
	}

	return mutated
}

// mutateWords builds and applies a mutation plan in one step.
func mutateWords(words m.Passphrase, count int, rand adapter.RandSource) (m.Passphrase, error) {
	plan, err := buildMutationPlan(words, count, rand)
	if err != nil {
		return nil, err
	}

	return applyMutationPlan(words, plan), nil
}
