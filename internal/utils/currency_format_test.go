package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatIDR(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{name: "grouped thousands", amount: decimal.NewFromInt(1500000), want: "Rp1.500.000"},
		{name: "fraction rounded away", amount: decimal.NewFromFloat(2500.75), want: "Rp2.501"},
		{name: "zero", amount: decimal.Zero, want: "Rp0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatIDR(tt.amount))
		})
	}
}
