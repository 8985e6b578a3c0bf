package nuban

import "strings"

// NormalizeBankCode strips every non-digit character from raw and pads the
// result to the canonical six digits:
//
//	3 digits (legacy commercial banks)  -> "000" + code
//	5 digits (microfinance and fintech) -> "9" + code
//	6 digits                            -> unchanged
//
// Any other length fails with ErrInvalidBankCode.
func NormalizeBankCode(raw string) (string, error) {
	code := stripNonDigits(raw)

	switch len(code) {
	case 3:
		return "000" + code, nil
	case 5:
		return "9" + code, nil
	case BankCodeLength:
		return code, nil
	default:
		return "", newInputError(ErrInvalidBankCode, code)
	}
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if _, ok := digitValue(s[i]); ok {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
