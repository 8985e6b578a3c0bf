package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/nuban/internal/model"
)

func TestRenderBankTable(t *testing.T) {
	out := RenderBankTable([]model.Bank{
		{Name: "Zenith Bank", Code: "057"},
		{Name: "Sparkle Microfinance Bank", Code: "51310"},
	})

	assert.Contains(t, out, "Bank")
	assert.Contains(t, out, "Zenith Bank")
	assert.Contains(t, out, "51310")

	assert.Contains(t, RenderBankTable(nil), "no banks")
}

func TestPrintBanks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintBanks(&buf, []model.Bank{{Name: "Zenith Bank", Code: "057"}}))
	assert.Contains(t, buf.String(), "1 bank(s)")
}

func TestFormatValidation(t *testing.T) {
	bank := model.Bank{Name: "Zenith Bank", Code: "057"}
	assert.Contains(t, FormatValidation("1234567899", bank, true), "is a valid NUBAN for Zenith Bank (057)")
	assert.Contains(t, FormatValidation("1234567890", bank, false), "is not a valid NUBAN")

	unknown := model.Bank{Code: "123456"}
	assert.Contains(t, FormatValidation("1234567899", unknown, true), "is a valid NUBAN for bank code 123456")
}

func TestFormatSummary(t *testing.T) {
	out := FormatSummary(BatchSummary{Total: 3, Valid: 1, Invalid: 1, Errors: 1})
	assert.Contains(t, out, "Rows checked: 3")
	assert.Contains(t, out, "Malformed: 1")
}
