package nuban

import "fmt"

// WeightedSum multiplies each digit by the weight at the same position and
// returns the total. digits and weights must have the same length.
func WeightedSum(digits string, weights []int) (int, error) {
	if len(digits) != len(weights) {
		return 0, fmt.Errorf("%w: %d digits, %d weights", ErrInvalidInputLength, len(digits), len(weights))
	}

	sum := 0
	for i := 0; i < len(digits); i++ {
		d, ok := digitValue(digits[i])
		if !ok {
			return 0, newInputError(ErrInvalidDigit, digits)
		}
		sum += d * weights[i]
	}
	return sum, nil
}

// CheckDigit computes the NUBAN check digit for a normalized six digit bank
// code and a nine digit serial. The result is always in [0, 9].
func CheckDigit(bankCode6, serial9 string) (int, error) {
	bankSum, err := WeightedSum(bankCode6, bankCodeWeights[:])
	if err != nil {
		return 0, fmt.Errorf("bank code: %w", err)
	}
	serialSum, err := WeightedSum(serial9, serialWeights[:])
	if err != nil {
		return 0, fmt.Errorf("serial: %w", err)
	}

	digit := 10 - (bankSum+serialSum)%10
	if digit == 10 {
		return 0, nil
	}
	return digit, nil
}

func digitValue(c byte) (int, bool) {
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}
