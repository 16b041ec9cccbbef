package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "dicepass.dev/pkg/dicepass/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer. It prints
// one passphrase per line with nothing else on stdout, so the result is
// safe to pipe.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayPassphrases prints each passphrase on its own line.
func (s *SimpleUI) DisplayPassphrases(ctx context.Context, passphrases []m.Passphrase, separator string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, passphrase := range passphrases {
		s.printf("%s\n", passphrase.Join(separator))
	}

	return nil
}

// DisplayEntropy prints the estimated passphrase strength.
func (s *SimpleUI) DisplayEntropy(ctx context.Context, bits float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("estimated entropy: %.1f bits\n", bits)

	return nil
}

// DisplayWordlistStats renders the wordlist summary as a table.
func (s *SimpleUI) DisplayWordlistStats(ctx context.Context, stats m.WordlistStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderStatsTable(stats))

	return nil
}

func renderStatsTable(stats m.WordlistStats) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{"Words", fmt.Sprintf("%d", stats.Words)})
	table.Append([]string{"Min length", fmt.Sprintf("%d", stats.MinLength)})
	table.Append([]string{"Max length", fmt.Sprintf("%d", stats.MaxLength)})
	table.Append([]string{"Mean length", fmt.Sprintf("%.1f", stats.MeanLength)})
	table.Append([]string{"Bits per word", fmt.Sprintf("%.2f", stats.BitsPerWord)})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
