package nuban

import "fmt"

// Validate reports whether accountNumber carries the correct check digit for
// the given bank code. The bank code may be in any form NormalizeBankCode
// accepts.
//
// An account number that is not ten characters long fails with
// ErrInvalidAccountNumber; a non-digit in it fails with ErrInvalidDigit.
func Validate(accountNumber, bankCode string) (bool, error) {
	if len(accountNumber) != AccountNumberLength {
		return false, newInputError(ErrInvalidAccountNumber, accountNumber)
	}

	code, err := NormalizeBankCode(bankCode)
	if err != nil {
		return false, err
	}

	serial := accountNumber[:SerialLength]
	provided, ok := digitValue(accountNumber[SerialLength])
	if !ok {
		return false, newInputError(ErrInvalidDigit, accountNumber[SerialLength:])
	}

	expected, err := CheckDigit(code, serial)
	if err != nil {
		return false, err
	}
	return expected == provided, nil
}

// GenerateAccountNumber appends the check digit to a nine digit serial,
// producing the account number that validates against bankCode.
func GenerateAccountNumber(bankCode, serial string) (string, error) {
	code, err := NormalizeBankCode(bankCode)
	if err != nil {
		return "", err
	}
	if len(serial) != SerialLength {
		return "", newInputError(ErrInvalidAccountNumber, serial)
	}

	digit, err := CheckDigit(code, serial)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", serial, digit), nil
}

// isAccountNumber reports whether s is exactly ten decimal digits.
func isAccountNumber(s string) bool {
	if len(s) != AccountNumberLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if _, ok := digitValue(s[i]); !ok {
			return false
		}
	}
	return true
}
