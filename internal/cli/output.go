package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/nuban/internal/model"
)

// RenderBankTable renders banks as a two column table of name and code.
func RenderBankTable(banks []model.Bank) string {
	if len(banks) == 0 {
		return SubtleStyle.Render("(no banks)")
	}

	nameWidth := len("Bank")
	for _, bank := range banks {
		nameWidth = max(nameWidth, lipgloss.Width(bank.Name))
	}

	var b strings.Builder
	header := TableCellStyle.Width(nameWidth+2).Render("Bank") + TableCellStyle.Render("Code")
	b.WriteString(TableHeaderStyle.Render(header))
	b.WriteString("\n")
	for _, bank := range banks {
		b.WriteString(TableCellStyle.Width(nameWidth + 2).Render(bank.Name))
		b.WriteString(TableCellStyle.Render(bank.Code))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// PrintBanks writes the bank table followed by a match count.
func PrintBanks(w io.Writer, banks []model.Bank) error {
	if _, err := fmt.Fprintln(w, RenderBankTable(banks)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, SubtleStyle.Render(fmt.Sprintf("%d bank(s)", len(banks))))
	return err
}

// FormatValidation renders the outcome of validating one account number.
// A bank without a name is shown by its code alone.
func FormatValidation(accountNumber string, bank model.Bank, valid bool) string {
	label := bank.String()
	if bank.Name == "" {
		label = "bank code " + bank.Code
	}
	if valid {
		return FormatSuccess(fmt.Sprintf("%s is a valid NUBAN for %s", accountNumber, label))
	}
	return FormatError(fmt.Sprintf("%s is not a valid NUBAN for %s", accountNumber, label))
}
