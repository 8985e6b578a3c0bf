package nuban

import (
	"log/slog"

	"github.com/Veraticus/nuban/internal/model"
)

// PredictBanks returns the banks, in the order given, whose code makes
// accountNumber a valid NUBAN. An entry whose code cannot be normalized is
// skipped so one bad record never hides the remaining matches.
//
// accountNumber must be exactly ten digits; that is checked before any bank
// is examined. An empty result is not an error.
func PredictBanks(accountNumber string, banks []model.Bank) ([]model.Bank, error) {
	if !isAccountNumber(accountNumber) {
		return nil, newInputError(ErrInvalidAccountNumber, accountNumber)
	}

	matches := make([]model.Bank, 0)
	for _, bank := range banks {
		ok, err := Validate(accountNumber, bank.Code)
		if err != nil {
			slog.Debug("Skipping bank with unusable code",
				"bank", bank.Name,
				"code", bank.Code,
				"error", err)
			continue
		}
		if ok {
			matches = append(matches, bank)
		}
	}
	return matches, nil
}
