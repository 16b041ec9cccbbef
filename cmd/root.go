// Package cmd provides the root command and CLI setup for dicepass.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"dicepass.dev/pkg/dicepass/internal/adapter"
	"dicepass.dev/pkg/dicepass/internal/controller"
	"dicepass.dev/pkg/dicepass/internal/domain"
	m "dicepass.dev/pkg/dicepass/internal/model"
)

var wordlistAdapter adapter.WordlistAdapter
var randSource adapter.RandSource
var generator domain.Generator
var ui controller.UI

// dictionaryFlag is a root-level flag shared by commands that read wordlists.
var dictionaryFlag string

var wordsFlag int
var mutationsFlag int
var separatorFlag string
var countFlag int

// interactiveFlag switches output to the terminal UI when stdout is a TTY.
var interactiveFlag bool

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	wordlistAdapter = adapter.NewLocalWordlistAdapter()
	randSource = adapter.NewCryptoRandSource()
	generator = domain.NewGenerator(wordlistAdapter, randSource)
	ui = controller.NewSimpleUI(rootCmd)
}

const rootLongDescription = `Dicepass generates memorable passphrases by drawing words uniformly from a
wordlist (the diceware method) using the operating system's secure entropy
source. A bounded number of words can additionally have a single character
replaced by a random symbol for extra entropy.

Positional arguments are read in this order (flags cover the other cases):

  dicepass [dictionary_path] [word_count] [mutation_count]

With no arguments, six words are drawn from the bundled wordlist.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "dicepass [dictionary_path] [word_count] [mutation_count]",
		Short:        "Diceware passphrase generator",
		Long:         rootLongDescription,
		Args:         cobra.MaximumNArgs(3),
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: runGenerate,
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&dictionaryFlag, dictionaryFlagName, "d",
			viper.GetString(dictionaryConfigKey),
			"path to a newline-delimited wordlist file (default: bundled list)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(dictionaryFlagName), dictionaryConfigKey)

	cmd.Flags().IntVarP(&wordsFlag, wordsFlagName, "w", viper.GetInt(wordsConfigKey), "number of words per passphrase")
	bindFlagToConfig(cmd.Flags().Lookup(wordsFlagName), wordsConfigKey)

	cmd.Flags().IntVarP(&mutationsFlag, mutationsFlagName, "m", viper.GetInt(mutationsConfigKey), "number of words to mutate by one character")
	bindFlagToConfig(cmd.Flags().Lookup(mutationsFlagName), mutationsConfigKey)

	cmd.Flags().StringVarP(&separatorFlag, separatorFlagName, "s", viper.GetString(separatorConfigKey), "separator between words")
	bindFlagToConfig(cmd.Flags().Lookup(separatorFlagName), separatorConfigKey)

	cmd.Flags().IntVarP(&countFlag, countFlagName, "n", viper.GetInt(countConfigKey), "number of passphrases to generate")
	bindFlagToConfig(cmd.Flags().Lookup(countFlagName), countConfigKey)

	cmd.Flags().BoolVarP(&interactiveFlag, interactiveFlagName, "i", false, "interactive mode (regenerate with a keypress)")

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "debug logging and an entropy estimate after the passphrase")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default "+defaultLogFilename+")")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	genArgs, err := parsePositionalArgs(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	separator := viper.GetString(separatorConfigKey)

	passphrases, err := generator.Generate(ctx, genArgs)
	if err != nil {
		return err
	}

	interactive := interactiveFlag && controller.IsTTY(os.Stdout)

	var bits float64
	if verboseFlag || interactive {
		wordlist, err := generator.LoadWordlist(genArgs.Dictionary)
		if err != nil {
			return err
		}

		bits = domain.EstimateEntropy(wordlist, genArgs.Words, genArgs.Mutations)
	}

	if interactive {
		tui := controller.NewTUI(cmd.OutOrStdout(), regenerateFunc(ctx, genArgs), bits)
		return tui.DisplayPassphrases(ctx, passphrases[:1], separator)
	}

	if err := ui.DisplayPassphrases(ctx, passphrases, separator); err != nil {
		return err
	}

	if verboseFlag {
		return ui.DisplayEntropy(ctx, bits)
	}

	return nil
}

// regenerateFunc supplies fresh single passphrases to the interactive UI.
func regenerateFunc(ctx context.Context, args domain.GenerateArgs) controller.RegenerateFunc {
	single := args
	single.Count = 1

	return func() (m.Passphrase, error) {
		passphrases, err := generator.Generate(ctx, single)
		if err != nil {
			return nil, err
		}

		return passphrases[0], nil
	}
}

// parsePositionalArgs overlays the canonical positional arguments
// [dictionary_path] [word_count] [mutation_count] on top of the
// flag/config values.
func parsePositionalArgs(args []string) (domain.GenerateArgs, error) {
	genArgs := domain.GenerateArgs{
		Dictionary: m.Path(viper.GetString(dictionaryConfigKey)),
		Words:      viper.GetInt(wordsConfigKey),
		Mutations:  viper.GetInt(mutationsConfigKey),
		Count:      viper.GetInt(countConfigKey),
	}

	if len(args) > 0 {
		genArgs.Dictionary = m.Path(args[0])
	}

	if len(args) > 1 {
		words, err := strconv.Atoi(args[1])
		if err != nil {
			return domain.GenerateArgs{}, fmt.Errorf("%w: word count %q is not an integer", m.ErrInvalidCount, args[1])
		}

		genArgs.Words = words
	}

	if len(args) > 2 {
		mutations, err := strconv.Atoi(args[2])
		if err != nil {
			return domain.GenerateArgs{}, fmt.Errorf("%w: mutation count %q is not an integer", m.ErrInvalidCount, args[2])
		}

		genArgs.Mutations = mutations
	}

	return genArgs, nil
}
