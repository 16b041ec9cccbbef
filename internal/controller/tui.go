package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "dicepass.dev/pkg/dicepass/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display. Pressing r
// (or enter) redraws a fresh passphrase without restarting the program.
type TUI struct {
	output     io.Writer
	regenerate RegenerateFunc
	separator  string
	bits       float64
}

// NewTUI creates a new TUI. regenerate supplies fresh passphrases for
// redraws; bits is the entropy estimate shown under the passphrase.
func NewTUI(output io.Writer, regenerate RegenerateFunc, bits float64) *TUI {
	return &TUI{
		output:     output,
		regenerate: regenerate,
		bits:       bits,
	}
}

// DisplayPassphrases runs the interactive program seeded with the first
// passphrase.
func (t *TUI) DisplayPassphrases(ctx context.Context, passphrases []m.Passphrase, separator string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(passphrases) == 0 {
		return nil
	}

	t.separator = separator
	model := newPassphraseModel(passphrases[0].Join(separator), t.bits, t.regenerate, separator)

	program := tea.NewProgram(model, tea.WithOutput(t.output))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayEntropy is a no-op; the estimate is part of the interactive view.
func (t *TUI) DisplayEntropy(ctx context.Context, bits float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.bits = bits

	return nil
}

// DisplayWordlistStats renders the wordlist summary as a static table.
func (t *TUI) DisplayWordlistStats(ctx context.Context, stats m.WordlistStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprint(t.output, renderStatsTable(stats))

	return err
}

type passphraseKeyMap struct {
	Regenerate key.Binding
	Quit       key.Binding
}

func (k passphraseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Regenerate, k.Quit}
}

func (k passphraseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Regenerate, k.Quit}}
}

func defaultPassphraseKeyMap() passphraseKeyMap {
	return passphraseKeyMap{
		Regenerate: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r/enter", "new passphrase"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	passphraseStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Margin(1, 0)

	entropyStyle = lipgloss.NewStyle().Faint(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))
)

// passphraseModel is the Bubble Tea model for interactive generation.
type passphraseModel struct {
	passphrase string
	bits       float64
	regenerate RegenerateFunc
	separator  string
	keys       passphraseKeyMap
	help       help.Model
	err        error
	quitting   bool
}

func newPassphraseModel(passphrase string, bits float64, regenerate RegenerateFunc, separator string) passphraseModel {
	return passphraseModel{
		passphrase: passphrase,
		bits:       bits,
		regenerate: regenerate,
		separator:  separator,
		keys:       defaultPassphraseKeyMap(),
		help:       help.New(),
	}
}

func (pm passphraseModel) Init() tea.Cmd {
	return nil
}

func (pm passphraseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.help.Width = msg.Width
		return pm, nil
	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

func (pm passphraseModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, pm.keys.Quit):
		pm.quitting = true
		return pm, tea.Quit
	case key.Matches(msg, pm.keys.Regenerate):
		if pm.regenerate == nil {
			return pm, nil
		}

		passphrase, err := pm.regenerate()
		if err != nil {
			pm.err = err
			return pm, nil
		}

		pm.err = nil
		pm.passphrase = passphrase.Join(pm.separator)

		return pm, nil
	}

	return pm, nil
}

func (pm passphraseModel) View() string {
	if pm.quitting {
		// Leave the last passphrase on screen after exit.
		return pm.passphrase + "\n"
	}

	view := titleStyle.Render("dicepass") + "\n"
	view += passphraseStyle.Render(pm.passphrase) + "\n"
	view += entropyStyle.Render(fmt.Sprintf("~%.1f bits", pm.bits)) + "\n"

	if pm.err != nil {
		view += errorStyle.Render(pm.err.Error()) + "\n"
	}

	view += "\n" + pm.help.View(pm.keys) + "\n"

	return view
}
