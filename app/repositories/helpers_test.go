package repositories

import (
	"github.com/Rakhulsr/go-fitstore/app/models"
	"github.com/Rakhulsr/go-fitstore/app/utils/calc"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
)

func percent(p int) *int {
	return &p
}

func sampleCart() models.Cart {
	return calc.WithTotals(models.Cart{Items: []models.CartLineItem{
		{
			Product: models.Product{
				ID:       "tee-aero-01",
				Name:     "Aero Training Tee",
				Slug:     "aero-training-tee",
				Price:    decimal.RequireFromString("100.00"),
				Discount: percent(20),
				Images:   []string{"/images/products/aero-tee.jpg"},
				Sizes:    []models.Size{models.SizeM, models.SizeL},
				Colors:   []models.Color{models.ColorBlack},
			},
			Quantity: 2,
			Size:     models.SizeM,
			Color:    models.ColorBlack,
		},
		{
			Product:  models.Product{ID: "band-loop-06", Name: "Loop Resistance Band Set", Price: decimal.RequireFromString("15.00")},
			Quantity: 1,
		},
	}})
}

func newTestCartStorage(kv KeyValueStore) (*CartStorage, *test.Hook) {
	log, hook := test.NewNullLogger()
	return NewCartStorage(kv, validator.New(), log), hook
}

// brokenStore fails every call.
type brokenStore struct{}

func (brokenStore) GetItem(string) (string, bool, error) { return "", false, errors.New("io error") }
func (brokenStore) SetItem(string, string) error         { return errors.New("io error") }
func (brokenStore) RemoveItem(string) error              { return errors.New("io error") }

