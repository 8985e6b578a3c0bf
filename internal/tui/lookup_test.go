package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/nuban/internal/model"
	"github.com/Veraticus/nuban/internal/registry"
)

func typeRunes(t *testing.T, m LookupModel, s string) LookupModel {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	lm, ok := updated.(LookupModel)
	require.True(t, ok)
	return lm
}

func TestLookupModel_PredictsOnFullNumber(t *testing.T) {
	m := NewLookupModel(registry.Default())

	m = typeRunes(t, m, "123456789")
	assert.Equal(t, "123456789", m.Value())
	assert.Empty(t, m.Matches())
	assert.Contains(t, m.View(), "1 more digit(s)")

	m = typeRunes(t, m, "9")
	assert.Equal(t, "1234567899", m.Value())
	assert.Contains(t, m.Matches(), model.Bank{Name: "Zenith Bank", Code: "057"})
	assert.Contains(t, m.View(), "Zenith Bank (057)")
}

func TestLookupModel_IgnoresNonDigits(t *testing.T) {
	m := NewLookupModel(registry.Default())

	m = typeRunes(t, m, "ab")
	assert.Equal(t, "", m.Value())

	m = typeRunes(t, m, "12-34")
	assert.Equal(t, "1234", m.Value())
}

func TestLookupModel_StopsAtTenDigits(t *testing.T) {
	m := NewLookupModel(registry.Default())
	m = typeRunes(t, m, "123456789912")
	assert.Equal(t, "1234567899", m.Value())
}

func TestLookupModel_NoMatches(t *testing.T) {
	reg := registry.New([]model.Bank{{Name: "Zenith Bank", Code: "057"}})
	m := NewLookupModel(reg)

	m = typeRunes(t, m, "1234567890")
	assert.Empty(t, m.Matches())
	assert.Contains(t, m.View(), "No bank in the list accepts this account number")
}

func TestLookupModel_ClearAndQuit(t *testing.T) {
	m := NewLookupModel(registry.Default())
	m = typeRunes(t, m, "1234567899")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(LookupModel)
	assert.Equal(t, "", m.Value())
	assert.Empty(t, m.Matches())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "", updated.View())
}
