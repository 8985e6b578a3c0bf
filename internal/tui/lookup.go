// Package tui implements the interactive account lookup screen.
package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/nuban/internal/cli"
	"github.com/Veraticus/nuban/internal/model"
	"github.com/Veraticus/nuban/internal/nuban"
	"github.com/Veraticus/nuban/internal/registry"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
	matchStyle = lipgloss.NewStyle().Foreground(cli.SuccessColor)
	helpStyle  = lipgloss.NewStyle().Foreground(cli.SubtleColor)
)

// LookupModel predicts banks for an account number as it is typed.
type LookupModel struct {
	err      error
	keys     KeyMap
	input    textinput.Model
	registry registry.Registry
	matches  []model.Bank
	quitting bool
}

// NewLookupModel creates a lookup screen predicting against reg.
func NewLookupModel(reg registry.Registry) LookupModel {
	input := textinput.New()
	input.Placeholder = "10 digit account number"
	input.CharLimit = nuban.AccountNumberLength
	input.Prompt = "Account › "
	input.Focus()

	return LookupModel{
		keys:     DefaultKeyMap(),
		input:    input,
		registry: reg,
	}
}

// Init returns initial commands.
func (m LookupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m LookupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Clear):
		m.input.Reset()
		m.refresh()
		return m, nil
	}

	if keyMsg.Type == tea.KeyRunes {
		keyMsg.Runes = digitsOnly(keyMsg.Runes)
		if len(keyMsg.Runes) == 0 {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	m.refresh()
	return m, cmd
}

// refresh recomputes predictions once a full account number is present.
func (m *LookupModel) refresh() {
	m.matches, m.err = nil, nil

	value := m.input.Value()
	if len(value) != nuban.AccountNumberLength {
		return
	}
	m.matches, m.err = nuban.PredictBanks(value, m.registry.Banks())
}

// View renders the screen.
func (m LookupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(cli.BankIcon + " NUBAN lookup"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	value := m.input.Value()
	switch {
	case m.err != nil:
		b.WriteString(cli.FormatError(m.err.Error()))
	case len(value) < nuban.AccountNumberLength:
		b.WriteString(helpStyle.Render(fmt.Sprintf("%d more digit(s)", nuban.AccountNumberLength-len(value))))
	case len(m.matches) == 0:
		b.WriteString(cli.FormatWarning("No bank in the list accepts this account number"))
	default:
		b.WriteString(fmt.Sprintf("Possible banks for %s:\n", value))
		for _, bank := range m.matches {
			b.WriteString(matchStyle.Render("  " + cli.SuccessIcon + " " + bank.String()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.keys.ShortHelp()))
	return b.String()
}

// Value returns the account number typed so far.
func (m LookupModel) Value() string {
	return m.input.Value()
}

// Matches returns the banks predicted for the current account number.
func (m LookupModel) Matches() []model.Bank {
	return m.matches
}

func digitsOnly(runes []rune) []rune {
	out := runes[:0:0]
	for _, r := range runes {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			out = append(out, r)
		}
	}
	return out
}
