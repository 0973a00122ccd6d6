package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var usd = accounting.Accounting{Symbol: "$", Precision: 2, Thousand: ",", Decimal: "."}

// FormatMoney renders amount rounded to cents, e.g. "$1,234.50".
func FormatMoney(amount decimal.Decimal) string {
	return usd.FormatMoneyDecimal(amount)
}

// Cents renders amount as a fixed two-decimal string without a symbol.
func Cents(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
