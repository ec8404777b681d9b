package application

import (
	"errors"
	"fmt"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid record input")
	// ErrPersistence signals the registry changed but the store did not confirm the write.
	ErrPersistence = errors.New("record store write failed")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrEmptyItem) ||
		errors.Is(err, domain.ErrNegativeQuantity) ||
		errors.Is(err, domain.ErrInvalidCategory) ||
		errors.Is(err, domain.ErrInvalidStatus) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}

func persistenceError(kind domain.RecordKind, key domain.NaturalKey, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrPersistence, kind, key, err)
}
