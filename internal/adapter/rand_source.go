// Package adapter provides the I/O edges of dicepass: wordlist loading
// and the secure randomness source.
package adapter

import (
	"crypto/rand"
	"fmt"
	"math/big"

	m "dicepass.dev/pkg/dicepass/internal/model"
)

// RandSource draws uniform random values. The domain layer depends on this
// interface so tests can substitute a deterministic fake; the production
// implementation must be backed by the operating system's CSPRNG.
type RandSource interface {
	// UniformIndex returns an integer in [0, n) with uniform probability.
	UniformIndex(n int) (int, error)
	// UniformChar returns one rune chosen uniformly from alphabet.
	UniformChar(alphabet []rune) (rune, error)
}

// CryptoRandSource implements RandSource on top of crypto/rand.
type CryptoRandSource struct{}

// NewCryptoRandSource creates a new CryptoRandSource.
func NewCryptoRandSource() CryptoRandSource {
	return CryptoRandSource{}
}

// UniformIndex returns an integer in [0, n) drawn from crypto/rand.
// rand.Int rejection-samples, so there is no modulo bias.
func (CryptoRandSource) UniformIndex(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: need n > 0, got %d", m.ErrInvalidRange, n)
	}

	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read from entropy source: %w", err)
	}

	return int(v.Int64()), nil
}

// UniformChar returns one rune chosen uniformly from alphabet.
func (c CryptoRandSource) UniformChar(alphabet []rune) (rune, error) {
	i, err := c.UniformIndex(len(alphabet))
	if err != nil {
		return 0, err
	}

	return alphabet[i], nil
}
