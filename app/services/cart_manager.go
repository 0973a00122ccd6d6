package services

import (
	"sync"

	"github.com/Rakhulsr/go-fitstore/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// StorageOpener opens a visitor's durable store. It runs while the visitor's
// lock is held, so a backend that snapshots on open reads the latest writes.
type StorageOpener func() (repositories.KeyValueStore, error)

// CartManager hands out a visitor's CartStore for the duration of one call
// and guarantees that calls for the same visitor never overlap.
type CartManager struct {
	mu       sync.Mutex
	locks    map[string]*visitorLock
	validate *validator.Validate
	log      logrus.FieldLogger
}

type visitorLock struct {
	mu   sync.Mutex
	refs int
}

func NewCartManager(validate *validator.Validate, log logrus.FieldLogger) *CartManager {
	return &CartManager{
		locks:    make(map[string]*visitorLock),
		validate: validate,
		log:      log,
	}
}

// WithCart opens the visitor's store, loads the cart and runs fn against it,
// all under the visitor's lock.
func (m *CartManager) WithCart(visitorID string, open StorageOpener, fn func(*CartStore) error) error {
	unlock := m.lock(visitorID)
	defer unlock()

	kv, err := open()
	if err != nil {
		return errors.Wrap(err, "open visitor storage")
	}

	log := m.log.WithField("visitor", visitorID)
	store := NewCartStore(repositories.NewCartStorage(kv, m.validate, log), log)
	return fn(store)
}

func (m *CartManager) lock(visitorID string) func() {
	m.mu.Lock()
	l, ok := m.locks[visitorID]
	if !ok {
		l = &visitorLock{}
		m.locks[visitorID] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		m.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.locks, visitorID)
		}
		m.mu.Unlock()
	}
}
