package services

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrPersistFailed   = errors.New("cart could not be persisted")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrProductNotFound = errors.New("product not found")
	ErrVariantNotFound = errors.New("product does not offer this variant")
	ErrPaymentFailed   = errors.New("payment request failed")
)

// PersistError reports a durable-store write that failed after the
// in-memory cart had already moved to the new state.
type PersistError struct {
	Action string
	Err    error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrPersistFailed.Error(), e.Action, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

func (e *PersistError) Is(target error) bool {
	return target == ErrPersistFailed
}
