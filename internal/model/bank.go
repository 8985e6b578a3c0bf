package model

import "strings"

// Bank is a financial institution known by its NUBAN bank code.
// The same shape is used for the built-in registry, cached lists and
// lists fetched from a bank directory, so all three are interchangeable.
type Bank struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// String returns "Name (Code)".
func (b Bank) String() string {
	return b.Name + " (" + b.Code + ")"
}

// NameContains reports whether the bank name contains substr, ignoring case.
func (b Bank) NameContains(substr string) bool {
	return strings.Contains(strings.ToLower(b.Name), strings.ToLower(substr))
}
