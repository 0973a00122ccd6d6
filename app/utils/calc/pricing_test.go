package calc

import (
	"testing"

	"github.com/Rakhulsr/go-fitstore/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(id, price string, discount *int, qty int) models.CartLineItem {
	return models.CartLineItem{
		Product:  models.Product{ID: id, Price: dec(price), Discount: discount},
		Quantity: qty,
	}
}

func percent(p int) *int {
	return &p
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		name     string
		item     models.CartLineItem
		expected string
	}{
		{"no discount", line("p1", "49.99", nil, 1), "49.99"},
		{"twenty percent", line("p1", "100", percent(20), 1), "80"},
		{"zero percent", line("p1", "12.50", percent(0), 1), "12.50"},
		{"full discount", line("p1", "30", percent(100), 1), "0"},
		{"fractional result", line("p1", "9.99", percent(33), 1), "6.6933"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.expected, EffectivePrice(tt.item))
		})
	}
}

func TestComputeTotals_DiscountedItem(t *testing.T) {
	totals := ComputeTotals([]models.CartLineItem{line("p1", "100", percent(20), 2)})

	assertDecimal(t, "160.00", totals.Subtotal)
	assertDecimal(t, "0", totals.Shipping)
	assertDecimal(t, "12.80", totals.Tax)
	assertDecimal(t, "172.80", totals.Total)
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(nil)

	assertDecimal(t, "0", totals.Subtotal)
	assertDecimal(t, "9.99", totals.Shipping)
	assertDecimal(t, "0", totals.Tax)
	assertDecimal(t, "9.99", totals.Total)
}

func TestComputeTotals_FreeShippingBoundary(t *testing.T) {
	atThreshold := ComputeTotals([]models.CartLineItem{line("p1", "25.00", nil, 2)})
	assertDecimal(t, "50.00", atThreshold.Subtotal)
	assertDecimal(t, "9.99", atThreshold.Shipping)
	assertDecimal(t, "63.99", atThreshold.Total)

	above := ComputeTotals([]models.CartLineItem{line("p1", "50.01", nil, 1)})
	assertDecimal(t, "50.01", above.Subtotal)
	assertDecimal(t, "0", above.Shipping)
}

func TestComputeTotals_SumsAllLines(t *testing.T) {
	totals := ComputeTotals([]models.CartLineItem{
		line("p1", "10", nil, 3),
		line("p2", "20", percent(50), 1),
	})

	assertDecimal(t, "40", totals.Subtotal)
	assertDecimal(t, "9.99", totals.Shipping)
	assertDecimal(t, "3.2", totals.Tax)
	assertDecimal(t, "53.19", totals.Total)
}

func TestComputeTotals_TrustsInput(t *testing.T) {
	totals := ComputeTotals([]models.CartLineItem{line("p1", "-10", nil, 1)})

	assertDecimal(t, "-10", totals.Subtotal)
	assertDecimal(t, "9.99", totals.Shipping)
}

func TestEmptyCart(t *testing.T) {
	cart := EmptyCart()

	require.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
	assertDecimal(t, "0", cart.Subtotal)
	assertDecimal(t, "9.99", cart.Shipping)
	assertDecimal(t, "0", cart.Tax)
	assertDecimal(t, "9.99", cart.Total)
}

func TestCalculateDiscount(t *testing.T) {
	assertDecimal(t, "25", CalculateDiscount(dec("125"), 20))
}
