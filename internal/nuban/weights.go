package nuban

const (
	// BankCodeLength is the canonical length of a normalized bank code.
	BankCodeLength = 6
	// SerialLength is the number of account digits preceding the check digit.
	SerialLength = 9
	// AccountNumberLength is the total length of a NUBAN account number.
	AccountNumberLength = SerialLength + 1
)

var (
	bankCodeWeights = [BankCodeLength]int{3, 7, 3, 3, 7, 3}
	serialWeights   = [SerialLength]int{3, 7, 3, 3, 7, 3, 3, 7, 3}
)

// BankCodeWeights returns a copy of the weights applied to the bank code.
func BankCodeWeights() []int {
	w := bankCodeWeights
	return w[:]
}

// SerialWeights returns a copy of the weights applied to the serial.
func SerialWeights() []int {
	w := serialWeights
	return w[:]
}
