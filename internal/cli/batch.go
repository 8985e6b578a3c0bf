package cli

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/Veraticus/nuban/internal/nuban"
)

// RowStatus is the outcome of validating one CSV row.
type RowStatus string

const (
	// RowValid means the check digit matched.
	RowValid RowStatus = "valid"
	// RowInvalid means the row was well formed but the check digit did not match.
	RowInvalid RowStatus = "invalid"
	// RowError means the row could not be validated.
	RowError RowStatus = "error"
)

// RowResult records the validation of one input row.
type RowResult struct {
	AccountNumber string
	BankCode      string
	Status        RowStatus
	Message       string
	Line          int
}

// BatchSummary counts results by status.
type BatchSummary struct {
	Total   int
	Valid   int
	Invalid int
	Errors  int
}

// BatchValidator validates CSV files of account_number,bank_code rows.
type BatchValidator struct {
	progress io.Writer
}

// NewBatchValidator creates a validator that draws a progress bar on
// progress. Pass nil to disable the bar.
func NewBatchValidator(progress io.Writer) *BatchValidator {
	return &BatchValidator{progress: progress}
}

// Validate reads every row of r and validates it. A header row naming the
// columns is optional; when present its account_number and bank_code
// columns are used, otherwise the first two columns are.
func (b *BatchValidator) Validate(ctx context.Context, r io.Reader) ([]RowResult, BatchSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, BatchSummary{}, fmt.Errorf("reading CSV: %w", err)
	}

	accountCol, codeCol, firstLine := 0, 1, 1
	if len(rows) > 0 && isHeader(rows[0]) {
		accountCol, codeCol, err = headerColumns(rows[0])
		if err != nil {
			return nil, BatchSummary{}, err
		}
		rows = rows[1:]
		firstLine = 2
	}

	bar := b.newProgressBar(len(rows))

	results := make([]RowResult, 0, len(rows))
	var summary BatchSummary
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return results, summary, err
		}

		result := validateRow(row, accountCol, codeCol)
		result.Line = firstLine + i
		results = append(results, result)

		summary.Total++
		switch result.Status {
		case RowValid:
			summary.Valid++
		case RowInvalid:
			summary.Invalid++
		case RowError:
			summary.Errors++
		}

		if bar != nil {
			if err := bar.Add(1); err != nil {
				slog.Warn("Failed to update progress bar", "error", err)
			}
		}
	}

	return results, summary, nil
}

func validateRow(row []string, accountCol, codeCol int) RowResult {
	if len(row) <= max(accountCol, codeCol) {
		return RowResult{Status: RowError, Message: "expected account_number and bank_code columns"}
	}

	result := RowResult{
		AccountNumber: strings.TrimSpace(row[accountCol]),
		BankCode:      strings.TrimSpace(row[codeCol]),
	}

	valid, err := nuban.Validate(result.AccountNumber, result.BankCode)
	switch {
	case err != nil:
		result.Status = RowError
		result.Message = err.Error()
	case valid:
		result.Status = RowValid
	default:
		result.Status = RowInvalid
		result.Message = "check digit mismatch"
	}
	return result
}

// isHeader reports whether row looks like column names rather than data.
func isHeader(row []string) bool {
	for _, field := range row {
		name := normalizeColumn(field)
		if name == "account_number" || name == "bank_code" {
			return true
		}
	}
	return false
}

func headerColumns(header []string) (int, int, error) {
	accountCol, codeCol := -1, -1
	for i, field := range header {
		switch normalizeColumn(field) {
		case "account_number":
			accountCol = i
		case "bank_code":
			codeCol = i
		}
	}
	if accountCol < 0 || codeCol < 0 {
		return 0, 0, errors.New("CSV header must contain account_number and bank_code")
	}
	return accountCol, codeCol, nil
}

func normalizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(name)
}

func (b *BatchValidator) newProgressBar(total int) *progressbar.ProgressBar {
	if b.progress == nil || total == 0 {
		return nil
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.progress),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Validating accounts...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(b.progress); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

// WriteResults writes results as CSV with a header row.
func WriteResults(w io.Writer, results []RowResult) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"line", "account_number", "bank_code", "status", "message"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, r := range results {
		record := []string{strconv.Itoa(r.Line), r.AccountNumber, r.BankCode, string(r.Status), r.Message}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", r.Line, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// FormatSummary renders a batch summary box.
func FormatSummary(s BatchSummary) string {
	content := fmt.Sprintf("  • Rows checked: %d\n", s.Total) +
		fmt.Sprintf("  • Valid: %d\n", s.Valid) +
		fmt.Sprintf("  • Invalid check digit: %d\n", s.Invalid) +
		fmt.Sprintf("  • Malformed: %d", s.Errors)
	return RenderBox("Batch Validation", content)
}
