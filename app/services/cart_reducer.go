package services

import (
	"github.com/Rakhulsr/go-fitstore/app/models"
	"github.com/Rakhulsr/go-fitstore/app/utils/calc"
)

// CartAction is one transition of the cart state machine.
type CartAction interface {
	ActionName() string
}

type AddItem struct {
	Item models.CartLineItem
}

type RemoveItem struct {
	ProductID string
	Size      models.Size
	Color     models.Color
}

// UpdateQuantity sets an absolute quantity; zero or less removes the line.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
	Size      models.Size
	Color     models.Color
}

type ClearCart struct{}

func (AddItem) ActionName() string        { return "add_item" }
func (RemoveItem) ActionName() string     { return "remove_item" }
func (UpdateQuantity) ActionName() string { return "update_quantity" }
func (ClearCart) ActionName() string      { return "clear_cart" }

// ReduceCart returns the cart that results from applying action to state.
// It never mutates state. Unknown actions return state unchanged.
func ReduceCart(state models.Cart, action CartAction) models.Cart {
	switch a := action.(type) {
	case AddItem:
		return calc.WithTotals(addItem(state, a.Item))
	case RemoveItem:
		return calc.WithTotals(removeLine(state, models.LineKey{ProductID: a.ProductID, Size: a.Size, Color: a.Color}))
	case UpdateQuantity:
		key := models.LineKey{ProductID: a.ProductID, Size: a.Size, Color: a.Color}
		idx := indexOf(state.Items, key)
		if idx < 0 {
			return state
		}
		if a.Quantity <= 0 {
			return calc.WithTotals(removeLine(state, key))
		}
		next := state.Clone()
		next.Items[idx].Quantity = a.Quantity
		return calc.WithTotals(next)
	case ClearCart:
		return calc.EmptyCart()
	default:
		return state
	}
}

// addItem merges into the line with the same key or appends a new line.
// A merge that leaves no positive quantity drops the line, and a new line
// without a positive quantity is never stored.
func addItem(state models.Cart, item models.CartLineItem) models.Cart {
	key := item.Key()
	if idx := indexOf(state.Items, key); idx >= 0 {
		merged := state.Items[idx].Quantity + item.Quantity
		if merged <= 0 {
			return removeLine(state, key)
		}
		next := state.Clone()
		next.Items[idx].Quantity = merged
		return next
	}
	if item.Quantity <= 0 {
		return state
	}
	next := state.Clone()
	next.Items = append(next.Items, item)
	return next
}

func removeLine(state models.Cart, key models.LineKey) models.Cart {
	items := make([]models.CartLineItem, 0, len(state.Items))
	for _, item := range state.Items {
		if !item.Matches(key) {
			items = append(items, item)
		}
	}
	state.Items = items
	return state
}

func indexOf(items []models.CartLineItem, key models.LineKey) int {
	for i, item := range items {
		if item.Matches(key) {
			return i
		}
	}
	return -1
}
