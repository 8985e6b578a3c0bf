package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBank_NameContains(t *testing.T) {
	bank := Bank{Name: "Zenith Bank", Code: "057"}

	tests := []struct {
		name   string
		substr string
		want   bool
	}{
		{name: "exact case", substr: "Bank", want: true},
		{name: "lower case", substr: "bank", want: true},
		{name: "upper case", substr: "ZENITH", want: true},
		{name: "empty matches everything", substr: "", want: true},
		{name: "no match", substr: "access", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bank.NameContains(tt.substr))
		})
	}
}

func TestBank_String(t *testing.T) {
	assert.Equal(t, "Zenith Bank (057)", Bank{Name: "Zenith Bank", Code: "057"}.String())
}
