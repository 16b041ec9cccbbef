package domain

import (
	"math"

	m "dicepass.dev/pkg/dicepass/internal/model"
)

// EstimateEntropy approximates the strength in bits of a passphrase of
// words tokens drawn from wordlist with mutations single-character
// substitutions. Pure selection contributes words*log2(W); mutations add
// the choice of positions plus, per mutation, the character index and the
// replacement rune.
func EstimateEntropy(wordlist m.Wordlist, words, mutations int) float64 {
	if wordlist.Len() == 0 || words <= 0 {
		return 0
	}

	bits := float64(words) * math.Log2(float64(wordlist.Len()))

	if mutations > 0 && mutations <= words {
		stats := Stats(wordlist)
		bits += log2Binomial(words, mutations)
		bits += float64(mutations) * (math.Log2(stats.MeanLength) + math.Log2(float64(len(mutationAlphabet))))
	}

	return bits
}

// Stats summarizes the wordlist for display.
func Stats(wordlist m.Wordlist) m.WordlistStats {
	stats := m.WordlistStats{Words: wordlist.Len()}
	if stats.Words == 0 {
		return stats
	}

	total := 0

	for i := 0; i < wordlist.Len(); i++ {
		length := len([]rune(wordlist.Word(i)))

		total += length
		if stats.MinLength == 0 || length < stats.MinLength {
			stats.MinLength = length
		}

		if length > stats.MaxLength {
			stats.MaxLength = length
		}
	}

	stats.MeanLength = float64(total) / float64(stats.Words)
	stats.BitsPerWord = math.Log2(float64(stats.Words))

	return stats
}

// log2Binomial returns log2 of the binomial coefficient C(n, k).
func log2Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}

	var bits float64
	for i := 0; i < k; i++ {
		bits += math.Log2(float64(n-i)) - math.Log2(float64(i+1))
	}

	return bits
}
