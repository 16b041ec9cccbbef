// Package controller provides the output surfaces of dicepass: plain
// text for piped output and an interactive terminal UI.
package controller

import (
	"context"
	"os"

	"golang.org/x/term"

	m "dicepass.dev/pkg/dicepass/internal/model"
)

// RegenerateFunc produces a fresh passphrase for the interactive UI.
type RegenerateFunc func() (m.Passphrase, error)

// UI defines the interface for displaying generation results.
// Implementations can use different output methods (plain text, TUI).
type UI interface {
	DisplayPassphrases(ctx context.Context, passphrases []m.Passphrase, separator string) error
	DisplayEntropy(ctx context.Context, bits float64) error
	DisplayWordlistStats(ctx context.Context, stats m.WordlistStats) error
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
