package repositories

import (
	"encoding/json"

	"github.com/Rakhulsr/go-fitstore/app/models"
	"github.com/Rakhulsr/go-fitstore/app/utils/calc"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	CartStorageKey    = "fitstore-cart"
	CartSchemaVersion = 1
)

// persistedCart is the stored layout: the cart shape plus a schema version.
// Entries written before versioning have no version field and read as 0.
type persistedCart struct {
	Version int `json:"version"`
	models.Cart
}

// CartStorage serializes the whole cart under a single key.
type CartStorage struct {
	kv       KeyValueStore
	validate *validator.Validate
	log      logrus.FieldLogger
}

func NewCartStorage(kv KeyValueStore, validate *validator.Validate, log logrus.FieldLogger) *CartStorage {
	return &CartStorage{kv: kv, validate: validate, log: log}
}

func (s *CartStorage) Save(cart models.Cart) error {
	if cart.Items == nil {
		cart.Items = []models.CartLineItem{}
	}
	data, err := json.Marshal(persistedCart{Version: CartSchemaVersion, Cart: cart})
	if err != nil {
		return errors.Wrap(err, "encode cart")
	}
	return s.kv.SetItem(CartStorageKey, string(data))
}

// Load never fails: a missing, unreadable or invalid entry yields the empty
// cart. Totals are always re-derived from the stored items.
func (s *CartStorage) Load() models.Cart {
	raw, ok, err := s.kv.GetItem(CartStorageKey)
	if err != nil {
		s.log.WithError(err).Warn("CartStorage.Load: durable store read failed, starting with an empty cart")
		return calc.EmptyCart()
	}
	if !ok {
		return calc.EmptyCart()
	}

	var stored persistedCart
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.log.WithError(err).Warn("CartStorage.Load: stored cart is corrupt, falling back to an empty cart")
		return calc.EmptyCart()
	}

	if stored.Version != 0 && stored.Version != CartSchemaVersion {
		s.log.WithField("version", stored.Version).Warn("CartStorage.Load: unsupported cart schema version, wiping entry")
		if err := s.kv.RemoveItem(CartStorageKey); err != nil {
			s.log.WithError(err).Warn("CartStorage.Load: failed to wipe unsupported cart entry")
		}
		return calc.EmptyCart()
	}

	if err := s.validate.Struct(stored.Cart); err != nil {
		s.log.WithError(err).Warn("CartStorage.Load: stored cart failed validation, falling back to an empty cart")
		return calc.EmptyCart()
	}

	if stored.Items == nil {
		stored.Items = []models.CartLineItem{}
	}
	return calc.WithTotals(stored.Cart)
}
