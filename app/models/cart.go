package models

import "github.com/shopspring/decimal"

// LineKey identifies a cart line. Empty Size or Color is part of the key,
// so a product without variants never matches the same product with one.
type LineKey struct {
	ProductID string
	Size      Size
	Color     Color
}

type CartLineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity" validate:"gte=1"`
	Size     Size    `json:"size,omitempty" validate:"omitempty,oneof=XS S M L XL XXL"`
	Color    Color   `json:"color,omitempty" validate:"omitempty,oneof=black white grey red blue green pink"`
}

func (i CartLineItem) Key() LineKey {
	return LineKey{ProductID: i.Product.ID, Size: i.Size, Color: i.Color}
}

func (i CartLineItem) Matches(key LineKey) bool {
	return i.Key() == key
}

type Cart struct {
	Items    []CartLineItem  `json:"items" validate:"dive"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ItemCount is the number of units across all lines, not the number of lines.
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone copies the item slice so callers cannot mutate shared state.
func (c Cart) Clone() Cart {
	items := make([]CartLineItem, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}

// Equal compares by value; decimals are compared numerically.
func (c Cart) Equal(other Cart) bool {
	if len(c.Items) != len(other.Items) {
		return false
	}
	for i := range c.Items {
		a, b := c.Items[i], other.Items[i]
		if a.Quantity != b.Quantity || a.Size != b.Size || a.Color != b.Color || !a.Product.Equal(b.Product) {
			return false
		}
	}
	return c.Subtotal.Equal(other.Subtotal) &&
		c.Shipping.Equal(other.Shipping) &&
		c.Tax.Equal(other.Tax) &&
		c.Total.Equal(other.Total)
}
