package nuban

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		wantErr  error
		name     string
		account  string
		bankCode string
		want     bool
	}{
		{name: "zenith valid", account: "1234567899", bankCode: "057", want: true},
		{name: "zenith padded code", account: "1234567899", bankCode: "000057", want: true},
		{name: "zenith wrong check digit", account: "1234567890", bankCode: "057", want: false},
		{name: "all zeros with zero bank", account: "0000000000", bankCode: "000000", want: true},
		{name: "opay zero serial", account: "0000000007", bankCode: "999992", want: true},
		{name: "short account", account: "12345", bankCode: "057", wantErr: ErrInvalidAccountNumber},
		{name: "long account", account: "12345678901", bankCode: "057", wantErr: ErrInvalidAccountNumber},
		{name: "bank code without digits", account: "1234567890", bankCode: "abc", wantErr: ErrInvalidBankCode},
		{name: "non-digit serial", account: "12345678a9", bankCode: "057", wantErr: ErrInvalidDigit},
		{name: "non-digit check digit", account: "123456789x", bankCode: "057", wantErr: ErrInvalidDigit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.account, tt.bankCode)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_InvalidBankCodeReportsLength(t *testing.T) {
	_, err := Validate("1234567890", "abc")

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.ErrorIs(t, inputErr, ErrInvalidBankCode)
	assert.Equal(t, "", inputErr.Value)
	assert.Equal(t, 0, inputErr.Length)
}

func TestValidate_OnlyOneCheckDigitIsValid(t *testing.T) {
	// "000057" weighs 0+0+0+15+0+21 = 36.
	bankSum, err := WeightedSum("000057", BankCodeWeights())
	require.NoError(t, err)
	require.Equal(t, 36, bankSum)

	serial := "012345678"
	serialSum, err := WeightedSum(serial, SerialWeights())
	require.NoError(t, err)

	expected := (10 - (bankSum+serialSum)%10) % 10

	for d := 0; d <= 9; d++ {
		account := fmt.Sprintf("%s%d", serial, d)
		ok, err := Validate(account, "057")
		require.NoError(t, err)
		assert.Equal(t, d == expected, ok, "account %s", account)
	}
}

func TestGenerateAccountNumber(t *testing.T) {
	account, err := GenerateAccountNumber("057", "123456789")
	require.NoError(t, err)
	assert.Equal(t, "1234567899", account)

	ok, err := Validate(account, "057")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = GenerateAccountNumber("057", "1234")
	assert.ErrorIs(t, err, ErrInvalidAccountNumber)

	_, err = GenerateAccountNumber("12", "123456789")
	assert.ErrorIs(t, err, ErrInvalidBankCode)

	_, err = GenerateAccountNumber("057", "12345678z")
	assert.ErrorIs(t, err, ErrInvalidDigit)
}
