package services

import (
	"github.com/Rakhulsr/go-fitstore/app/models"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func percent(p int) *int {
	return &p
}

func product(id, price string, discount *int) models.Product {
	return models.Product{ID: id, Name: "Product " + id, Price: dec(price), Discount: discount}
}

func nullLogger() logrus.FieldLogger {
	log, _ := test.NewNullLogger()
	return log
}

// memoryPersister keeps the last saved cart and can be told to fail writes.
type memoryPersister struct {
	saved   *models.Cart
	saves   int
	failing bool
}

func (p *memoryPersister) Save(cart models.Cart) error {
	if p.failing {
		return errors.New("disk full")
	}
	clone := cart.Clone()
	p.saved = &clone
	p.saves++
	return nil
}

func (p *memoryPersister) Load() models.Cart {
	if p.saved == nil {
		return emptyCart()
	}
	return p.saved.Clone()
}
