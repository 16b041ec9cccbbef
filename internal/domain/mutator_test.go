package domain

import (
	"errors"
	"testing"
	"unicode"

	m "dicepass.dev/pkg/dicepass/internal/model"
)

func TestMutationAlphabet(t *testing.T) {
	if len(mutationAlphabet) != 36 {
		t.Fatalf("expected 36 runes in the mutation alphabet, got %d", len(mutationAlphabet))
	}

	seen := make(map[rune]bool, len(mutationAlphabet))
	for _, r := range mutationAlphabet {
		if unicode.IsSpace(r) {
			t.Errorf("mutation alphabet contains whitespace rune %q", r)
		}

		if seen[r] {
			t.Errorf("mutation alphabet contains duplicate rune %q", r)
		}

		seen[r] = true
	}
}

func TestBuildMutationPlan(t *testing.T) {
	words := m.Passphrase{"apple", "brave", "cider"}

	t.Run("re-rolls colliding word positions until distinct", func(t *testing.T) {
		// Position draws 1, 1, 2 collide once; then one character
		// index per chosen word in sorted order.
		rand := &scriptedRand{
			indexes: []int{1, 1, 2, 0, 1},
			chars:   []rune{'#', '9'},
		}

		plan, err := buildMutationPlan(words, 2, rand)
		if err != nil {
			t.Fatalf("buildMutationPlan failed: %v", err)
		}

		if len(plan) != 2 {
			t.Fatalf("expected plan of 2, got %d", len(plan))
		}

		if plan[0].WordIndex != 1 || plan[1].WordIndex != 2 {
			t.Errorf("expected word positions [1 2], got [%d %d]", plan[0].WordIndex, plan[1].WordIndex)
		}
	})

	t.Run("never repeats a word position", func(t *testing.T) {
		rand := &scriptedRand{
			indexes: []int{0, 0, 0, 1, 1, 1, 2, 0, 0, 0},
			chars:   []rune{'~', '!', '%'},
		}

		plan, err := buildMutationPlan(words, 3, rand)
		if err != nil {
			t.Fatalf("buildMutationPlan failed: %v", err)
		}

		seen := make(map[int]bool)
		for _, mutation := range plan {
			if seen[mutation.WordIndex] {
				t.Fatalf("word position %d appears twice in plan", mutation.WordIndex)
			}

			seen[mutation.WordIndex] = true
		}
	})

	t.Run("zero mutations draws nothing", func(t *testing.T) {
		plan, err := buildMutationPlan(words, 0, &scriptedRand{})
		if err != nil {
			t.Fatalf("buildMutationPlan failed: %v", err)
		}

		if len(plan) != 0 {
			t.Errorf("expected empty plan, got %d entries", len(plan))
		}
	})

	t.Run("rejects counts outside [0, len(words)]", func(t *testing.T) {
		for _, count := range []int{-1, len(words) + 1} {
			_, err := buildMutationPlan(words, count, &scriptedRand{})
			if !errors.Is(err, m.ErrInvalidCount) {
				t.Errorf("count %d: expected ErrInvalidCount, got %v", count, err)
			}
		}
	})
}

func TestApplyMutationPlan(t *testing.T) {
	t.Run("replaces exactly one character per planned word", func(t *testing.T) {
		words := m.Passphrase{"apple", "brave", "cider"}
		plan := m.MutationPlan{
			{WordIndex: 0, CharIndex: 1, Replacement: '#'},
			{WordIndex: 2, CharIndex: 4, Replacement: '9'},
		}

		mutated := applyMutationPlan(words, plan)

		want := m.Passphrase{"a#ple", "brave", "cide9"}
		for i := range want {
			if mutated[i] != want[i] {
				t.Errorf("word %d: got %q, want %q", i, mutated[i], want[i])
			}
		}
	})

	t.Run("does not modify the input sequence", func(t *testing.T) {
		words := m.Passphrase{"apple", "brave"}
		plan := m.MutationPlan{{WordIndex: 0, CharIndex: 0, Replacement: '!'}}

		_ = applyMutationPlan(words, plan)

		if words[0] != "apple" {
			t.Errorf("input sequence was modified: %v", words)
		}
	})

	t.Run("is rune-aware for non-ASCII words", func(t *testing.T) {
		words := m.Passphrase{"naïve"}
		plan := m.MutationPlan{{WordIndex: 0, CharIndex: 3, Replacement: '$'}}

		mutated := applyMutationPlan(words, plan)

		if mutated[0] != "naï$e" {
			t.Errorf("got %q, want %q", mutated[0], "naï$e")
		}

		if len([]rune(mutated[0])) != len([]rune(words[0])) {
			t.Errorf("rune count changed: %q -> %q", words[0], mutated[0])
		}
	})
}

func TestMutateWords(t *testing.T) {
	t.Run("mutated words differ in exactly one rune position", func(t *testing.T) {
		words := m.Passphrase{"apple", "brave", "cider", "delta"}
		rand := &scriptedRand{
			indexes: []int{0, 2, 1, 4},
			chars:   []rune{'#', '9'},
		}

		mutated, err := mutateWords(words, 2, rand)
		if err != nil {
			t.Fatalf("mutateWords failed: %v", err)
		}

		if len(mutated) != len(words) {
			t.Fatalf("length changed: got %d, want %d", len(mutated), len(words))
		}

		changed := 0

		for i := range words {
			diff := runeDiffCount(words[i], mutated[i])
			switch diff {
			case 0:
				continue
			case 1:
				changed++
			default:
				t.Errorf("word %d differs in %d positions: %q -> %q", i, diff, words[i], mutated[i])
			}
		}

		if changed != 2 {
			t.Errorf("expected exactly 2 mutated words, got %d", changed)
		}
	})

	t.Run("zero mutation count returns an identical sequence", func(t *testing.T) {
		words := m.Passphrase{"apple", "brave"}

		mutated, err := mutateWords(words, 0, &scriptedRand{})
		if err != nil {
			t.Fatalf("mutateWords failed: %v", err)
		}

		for i := range words {
			if mutated[i] != words[i] {
				t.Errorf("word %d changed with zero mutations: %q -> %q", i, words[i], mutated[i])
			}
		}
	})
}

func runeDiffCount(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return len(ra) + len(rb)
	}

	diff := 0

	for i := range ra {
		if ra[i] != rb[i] {
			diff++
		}
	}

	return diff
}
