package fee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateFee(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		amount string
		want   string
	}{
		{"0.01", "0"},
		{"500", "0"},
		{"1000", "0"},
		{"1000.01", "2.50"},
		{"5000", "2.50"},
		{"10000", "2.50"},
		{"10000.01", "5.00"},
		{"250000", "5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := calc.CalculateFee(decimal.RequireFromString(tt.amount))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"fee(%s) = %s, want %s", tt.amount, got, tt.want)
		})
	}
}
