package adapter

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	m "dicepass.dev/pkg/dicepass/internal/model"
)

//go:embed wordlist/default.txt
var bundledWordlist embed.FS

const bundledWordlistPath = "wordlist/default.txt"

// WordlistAdapter loads wordlists for passphrase generation.
type WordlistAdapter interface {
	// Load reads a newline-delimited wordlist from path.
	Load(path m.Path) (m.Wordlist, error)
	// LoadDefault returns the bundled wordlist.
	LoadDefault() (m.Wordlist, error)
}

// LocalWordlistAdapter implements WordlistAdapter for the local file system.
type LocalWordlistAdapter struct{}

// NewLocalWordlistAdapter creates a new LocalWordlistAdapter.
func NewLocalWordlistAdapter() LocalWordlistAdapter {
	return LocalWordlistAdapter{}
}

// Load reads the wordlist at path, one word per line. Blank lines and
// "#" comments are skipped. Lines in classic diceware format
// ("11111<TAB>word" or "11111 word") yield the word field.
func (LocalWordlistAdapter) Load(path m.Path) (m.Wordlist, error) {
	file, err := os.Open(string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", m.ErrDictionaryNotFound, path)
		}

		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer file.Close()

	words, err := parseWordlist(file)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %s", m.ErrEmptyDictionary, path)
	}

	return words, nil
}

// LoadDefault returns the wordlist embedded in the binary.
func (LocalWordlistAdapter) LoadDefault() (m.Wordlist, error) {
	file, err := bundledWordlist.Open(bundledWordlistPath)
	if err != nil {
		return nil, fmt.Errorf("open bundled wordlist: %w", err)
	}
	defer func(f fs.File) { _ = f.Close() }(file)

	words, err := parseWordlist(file)
	if err != nil {
		return nil, fmt.Errorf("read bundled wordlist: %w", err)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("%w: bundled wordlist", m.ErrEmptyDictionary)
	}

	return words, nil
}

func parseWordlist(r io.Reader) (m.Wordlist, error) {
	var words m.Wordlist

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word, ok := parseWordlistLine(scanner.Text())
		if !ok {
			continue
		}

		words = append(words, word)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

// parseWordlistLine extracts the word from a single wordlist line.
// Returns false for lines with no usable word.
func parseWordlistLine(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}

	fields := strings.Fields(line)
	switch {
	case len(fields) == 1:
		return fields[0], true
	case len(fields) == 2 && isDiceIndex(fields[0]):
		return fields[1], true
	default:
		// Embedded whitespace would break the one-token-per-word
		// invariant, so the line is unusable.
		return "", false
	}
}

func isDiceIndex(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return len(s) > 0
}
