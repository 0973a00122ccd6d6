package services

import (
	"github.com/Rakhulsr/go-fitstore/app/models"
	"github.com/sirupsen/logrus"
)

// CartPersister is the durable side of a CartStore.
type CartPersister interface {
	Save(cart models.Cart) error
	Load() models.Cart
}

// CartStore holds the current cart of one visitor. Every mutator reduces the
// cart, replaces the in-memory state and then writes the full snapshot
// through the persister before returning. A CartStore is not safe for
// concurrent use; CartManager serializes access per visitor.
type CartStore struct {
	cart      models.Cart
	persister CartPersister
	log       logrus.FieldLogger
}

// NewCartStore loads the persisted cart once; the store is usable as soon as
// it is returned.
func NewCartStore(persister CartPersister, log logrus.FieldLogger) *CartStore {
	return &CartStore{
		cart:      persister.Load(),
		persister: persister,
		log:       log,
	}
}

func (s *CartStore) Cart() models.Cart {
	return s.cart.Clone()
}

func (s *CartStore) ItemCount() int {
	return s.cart.ItemCount()
}

func (s *CartStore) AddItem(product models.Product, quantity int, size models.Size, color models.Color) error {
	return s.Dispatch(AddItem{Item: models.CartLineItem{
		Product:  product,
		Quantity: quantity,
		Size:     size,
		Color:    color,
	}})
}

func (s *CartStore) RemoveItem(productID string, size models.Size, color models.Color) error {
	return s.Dispatch(RemoveItem{ProductID: productID, Size: size, Color: color})
}

func (s *CartStore) UpdateQuantity(productID string, quantity int, size models.Size, color models.Color) error {
	return s.Dispatch(UpdateQuantity{ProductID: productID, Quantity: quantity, Size: size, Color: color})
}

func (s *CartStore) ClearCart() error {
	return s.Dispatch(ClearCart{})
}

// Dispatch applies action and persists the result. On a write failure the
// in-memory cart keeps the new state and a *PersistError is returned.
func (s *CartStore) Dispatch(action CartAction) error {
	s.cart = ReduceCart(s.cart, action)

	if err := s.persister.Save(s.cart); err != nil {
		name := "unknown"
		if action != nil {
			name = action.ActionName()
		}
		s.log.WithError(err).WithField("action", name).Error("CartStore: failed to persist cart")
		return &PersistError{Action: name, Err: err}
	}
	return nil
}
