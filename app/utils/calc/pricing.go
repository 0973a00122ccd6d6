// Package calc holds the pure money rules of the storefront. Inputs are
// trusted: a negative price or an out of range discount is not rejected here.
package calc

import (
	"github.com/Rakhulsr/go-fitstore/app/models"
	"github.com/shopspring/decimal"
)

type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// EffectivePrice is the per-unit price of a line after its product discount.
func EffectivePrice(item models.CartLineItem) decimal.Decimal {
	if item.Product.Discount == nil {
		return item.Product.Price
	}
	return ApplyDiscount(item.Product.Price, *item.Product.Discount)
}

func LineTotal(item models.CartLineItem) decimal.Decimal {
	return EffectivePrice(item).Mul(decimal.NewFromInt(int64(item.Quantity)))
}

func ComputeTotals(items []models.CartLineItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(LineTotal(item))
	}

	shipping := CalculateShipping(subtotal)
	tax := CalculateTax(subtotal)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    CalculateGrandTotal(subtotal, shipping, tax),
	}
}

// WithTotals returns cart with its money fields re-derived from its items.
func WithTotals(cart models.Cart) models.Cart {
	totals := ComputeTotals(cart.Items)
	cart.Subtotal = totals.Subtotal
	cart.Shipping = totals.Shipping
	cart.Tax = totals.Tax
	cart.Total = totals.Total
	return cart
}

// EmptyCart is the cart a new visitor starts with and the value a clear
// resets to: no items, and the totals of an empty subtotal.
func EmptyCart() models.Cart {
	return WithTotals(models.Cart{Items: []models.CartLineItem{}})
}
