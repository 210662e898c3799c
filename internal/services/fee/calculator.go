// Package fee implements the transfer fee schedule. The calculation is a
// pure function of the amount; no I/O, no state.
package fee

import "github.com/shopspring/decimal"

var (
	tier1Ceiling = decimal.NewFromInt(1000)
	tier2Ceiling = decimal.NewFromInt(10000)
	tier2Fee     = decimal.RequireFromString("2.50")
	tier3Fee     = decimal.RequireFromString("5.00")
)

type Calculator struct{}

func NewCalculator() Calculator {
	return Calculator{}
}

// CalculateFee maps a transfer amount to its fee. Boundary amounts (exactly
// 1000 and exactly 10000) fall into the lower tier.
func (Calculator) CalculateFee(amount decimal.Decimal) decimal.Decimal {
	switch {
	case amount.LessThanOrEqual(tier1Ceiling):
		return decimal.Zero
	case amount.LessThanOrEqual(tier2Ceiling):
		return tier2Fee
	default:
		return tier3Fee
	}
}
