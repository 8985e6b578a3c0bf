package nuban

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/nuban/internal/model"
	"github.com/Veraticus/nuban/internal/registry"
)

func TestPredictBanks_MatchesExactlyTheValidEntries(t *testing.T) {
	banks := registry.Banks()

	for _, account := range []string{"0000000000", "1234567899", "0123456789", "9999999999"} {
		t.Run(account, func(t *testing.T) {
			got, err := PredictBanks(account, banks)
			require.NoError(t, err)

			var want []model.Bank
			for _, bank := range banks {
				ok, err := Validate(account, bank.Code)
				require.NoError(t, err)
				if ok {
					want = append(want, bank)
				}
			}

			if len(want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestPredictBanks_IncludesZenith(t *testing.T) {
	got, err := PredictBanks("1234567899", registry.Banks())
	require.NoError(t, err)
	assert.Contains(t, got, model.Bank{Name: "Zenith Bank", Code: "057"})
}

func TestPredictBanks_PreservesOrderAndSkipsBadEntries(t *testing.T) {
	banks := []model.Bank{
		{Name: "Zenith Bank", Code: "057"},
		{Name: "Broken", Code: "12"},
		{Name: "Not a code", Code: "n/a"},
		{Name: "Access Bank", Code: "044"},
		{Name: "Zenith Bank (padded)", Code: "000057"},
	}

	got, err := PredictBanks("1234567899", banks)
	require.NoError(t, err)
	assert.Equal(t, []model.Bank{
		{Name: "Zenith Bank", Code: "057"},
		{Name: "Zenith Bank (padded)", Code: "000057"},
	}, got)
}

func TestPredictBanks_InvalidAccountNumber(t *testing.T) {
	for _, account := range []string{"", "12345", "12345678901", "12345678ab"} {
		_, err := PredictBanks(account, registry.Banks())
		assert.ErrorIs(t, err, ErrInvalidAccountNumber, "account %q", account)
	}
}

func TestPredictBanks_EmptyRegistry(t *testing.T) {
	got, err := PredictBanks("1234567899", nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
