package calc

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// CalculateDiscount returns the amount taken off base for a percentage discount.
func CalculateDiscount(base decimal.Decimal, discountPercent int) decimal.Decimal {
	return base.Mul(decimal.NewFromInt(int64(discountPercent))).Div(hundred)
}

// ApplyDiscount returns base × (1 − discountPercent/100).
func ApplyDiscount(base decimal.Decimal, discountPercent int) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromInt(int64(discountPercent)).Div(hundred))
	return base.Mul(factor)
}
