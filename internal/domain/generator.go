package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"dicepass.dev/pkg/dicepass/internal/adapter"
	m "dicepass.dev/pkg/dicepass/internal/model"
)

// GenerateArgs holds the inputs of one generation run.
type GenerateArgs struct {
	// Dictionary is the wordlist path; empty means the bundled default.
	Dictionary m.Path
	// Words is the number of word tokens per passphrase.
	Words int
	// Mutations is the number of words receiving a single-character
	// substitution. Must not exceed Words.
	Mutations int
	// Count is the number of passphrases to produce.
	Count int
}

// Generator produces passphrases from a wordlist.
type Generator interface {
	// Generate validates args, loads the dictionary once, and returns
	// args.Count passphrases. Validation happens before any randomness
	// is drawn; on error, no partial result is returned.
	Generate(ctx context.Context, args GenerateArgs) ([]m.Passphrase, error)

	// LoadWordlist resolves the dictionary referenced by path, falling
	// back to the bundled list when path is empty.
	LoadWordlist(path m.Path) (m.Wordlist, error)
}

type generator struct {
	wordlists adapter.WordlistAdapter
	rand      adapter.RandSource
}

// NewGenerator creates a Generator with the given adapters.
func NewGenerator(wordlists adapter.WordlistAdapter, rand adapter.RandSource) Generator {
	return &generator{
		wordlists: wordlists,
		rand:      rand,
	}
}

func (g *generator) Generate(ctx context.Context, args GenerateArgs) ([]m.Passphrase, error) {
	if err := validateArgs(args); err != nil {
		return nil, err
	}

	wordlist, err := g.LoadWordlist(args.Dictionary)
	if err != nil {
		return nil, err
	}

	slog.Debug("generating passphrases",
		"dictionary_words", wordlist.Len(),
		"words", args.Words,
		"mutations", args.Mutations,
		"count", args.Count,
	)

	passphrases := make([]m.Passphrase, args.Count)

	group, groupCtx := errgroup.WithContext(ctx)

	for i := range passphrases {
		i := i
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			passphrase, err := g.generateOne(wordlist, args)
			if err != nil {
				return err
			}

			passphrases[i] = passphrase

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return passphrases, nil
}

func (g *generator) LoadWordlist(path m.Path) (m.Wordlist, error) {
	if path == "" {
		return g.wordlists.LoadDefault()
	}

	return g.wordlists.Load(path)
}

func (g *generator) generateOne(wordlist m.Wordlist, args GenerateArgs) (m.Passphrase, error) {
	words, err := selectWords(wordlist, args.Words, g.rand)
	if err != nil {
		return nil, fmt.Errorf("select words: %w", err)
	}

	mutated, err := mutateWords(words, args.Mutations, g.rand)
	if err != nil {
		return nil, fmt.Errorf("mutate words: %w", err)
	}

	return mutated, nil
}

func validateArgs(args GenerateArgs) error {
	if args.Words <= 0 {
		return fmt.Errorf("%w: word count must be positive, got %d", m.ErrInvalidCount, args.Words)
	}

	if args.Mutations < 0 {
		return fmt.Errorf("%w: mutation count must not be negative, got %d", m.ErrInvalidCount, args.Mutations)
	}

	if args.Mutations > args.Words {
		return fmt.Errorf("%w: mutation count %d exceeds word count %d", m.ErrInvalidCount, args.Mutations, args.Words)
	}

	if args.Count <= 0 {
		return fmt.Errorf("%w: passphrase count must be positive, got %d", m.ErrInvalidCount, args.Count)
	}

	return nil
}
