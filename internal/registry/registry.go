// Package registry provides the built-in list of Nigerian banks and lookups
// over any ordered bank list.
package registry

import "github.com/Veraticus/nuban/internal/model"

// Registry is a read-only, ordered list of banks. Duplicates are kept as
// given. The zero value is an empty registry.
type Registry struct {
	banks []model.Bank
}

// New creates a registry over a copy of banks.
func New(banks []model.Bank) Registry {
	return Registry{banks: cloneBanks(banks)}
}

// Default returns the registry of built-in banks.
func Default() Registry {
	return Registry{banks: defaultBanks}
}

// Banks returns a copy of the built-in bank list.
func Banks() []model.Bank {
	return Default().Banks()
}

// FindByCode looks up a built-in bank by exact code.
func FindByCode(code string) (model.Bank, bool) {
	return Default().FindByCode(code)
}

// FindByName returns the built-in banks whose name contains substr,
// ignoring case.
func FindByName(substr string) []model.Bank {
	return Default().FindByName(substr)
}

// Banks returns a copy of the registry contents in order.
func (r Registry) Banks() []model.Bank {
	return cloneBanks(r.banks)
}

// Len returns the number of entries.
func (r Registry) Len() int {
	return len(r.banks)
}

// FindByCode returns the first bank whose code equals code exactly.
func (r Registry) FindByCode(code string) (model.Bank, bool) {
	for _, bank := range r.banks {
		if bank.Code == code {
			return bank, true
		}
	}
	return model.Bank{}, false
}

// FindByName returns every bank whose name contains substr, ignoring case,
// in registry order.
func (r Registry) FindByName(substr string) []model.Bank {
	matches := make([]model.Bank, 0)
	for _, bank := range r.banks {
		if bank.NameContains(substr) {
			matches = append(matches, bank)
		}
	}
	return matches
}

func cloneBanks(banks []model.Bank) []model.Bank {
	out := make([]model.Bank, len(banks))
	copy(out, banks)
	return out
}
