package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"dicepass.dev/pkg/dicepass/internal/domain"
	m "dicepass.dev/pkg/dicepass/internal/model"
)

const (
	wordsFormatTable = "table"
	wordsFormatYAML  = "yaml"
)

var wordsFormatFlag string

// wordsCmd represents the words command.
var wordsCmd = newWordsCmd()

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words [dictionary_path]",
		Short: "Inspect a wordlist",
		Long: `Show size, word-length range, and per-word entropy for a wordlist
(default: the bundled list).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := m.Path(viper.GetString(dictionaryConfigKey))
			if len(args) > 0 {
				path = m.Path(args[0])
			}

			wordlist, err := generator.LoadWordlist(path)
			if err != nil {
				return err
			}

			stats := domain.Stats(wordlist)

			switch wordsFormatFlag {
			case wordsFormatYAML:
				out, err := yaml.Marshal(stats)
				if err != nil {
					return fmt.Errorf("marshal wordlist stats: %w", err)
				}

				cmd.Print(string(out))

				return nil
			case wordsFormatTable:
				return ui.DisplayWordlistStats(cmd.Context(), stats)
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", wordsFormatFlag, wordsFormatTable, wordsFormatYAML)
			}
		},
	}

	cmd.Flags().StringVarP(&wordsFormatFlag, "format", "f", wordsFormatTable, "output format: table or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}
