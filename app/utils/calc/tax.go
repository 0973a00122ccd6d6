package calc

import "github.com/shopspring/decimal"

var (
	taxRate = decimal.RequireFromString("0.08")

	freeShippingThreshold = decimal.NewFromInt(50)
	flatShippingFee       = decimal.RequireFromString("9.99")
)

func GetTaxRate() decimal.Decimal {
	return taxRate
}

func CalculateTax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(taxRate)
}

// CalculateShipping is free strictly above the threshold; a subtotal of
// exactly 50 still pays the flat fee.
func CalculateShipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(freeShippingThreshold) {
		return decimal.Zero
	}
	return flatShippingFee
}

func FreeShippingThreshold() decimal.Decimal {
	return freeShippingThreshold
}

func CalculateGrandTotal(subtotal, shipping, tax decimal.Decimal) decimal.Decimal {
	return subtotal.Add(shipping).Add(tax)
}
