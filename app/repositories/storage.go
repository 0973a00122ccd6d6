package repositories

import (
	"net/http"

	"github.com/pkg/errors"
)

var ErrStorageUnavailable = errors.New("durable storage unavailable")

// KeyValueStore is a string keyed durable store scoped to one visitor,
// in the manner of a browser's local storage.
type KeyValueStore interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// StorageProvider opens the durable store of the visitor making a request.
type StorageProvider interface {
	Open(w http.ResponseWriter, r *http.Request, visitorID string) (KeyValueStore, error)
}
