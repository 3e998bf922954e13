package services

import (
	"github.com/pkg/errors"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/store"
)

// Error taxonomy shared by every operation. Callers classify with errors.Is;
// wrapped messages carry the human-readable detail.
var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput means the caller input is malformed or out of range.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidOperation means the input is valid but violates a business rule.
	ErrInvalidOperation = errors.New("operation not allowed")
	// ErrConflict means a concurrent modification was detected at write time.
	ErrConflict = errors.New("conflicting concurrent modification")
	// ErrStorageFailure is an unexpected lower-layer failure.
	ErrStorageFailure = errors.New("storage failure")
)

func notFound(msg string) error {
	return errors.Wrap(ErrNotFound, msg)
}

func invalidInput(msg string) error {
	return errors.Wrap(ErrInvalidInput, msg)
}

func invalidOperation(msg string) error {
	return errors.Wrap(ErrInvalidOperation, msg)
}

// storageErr classifies an error coming back from the store: a missing record
// becomes NotFound, anything unclassified becomes StorageFailure. Errors that
// already carry a taxonomy kind pass through unchanged.
func storageErr(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrRecordNotFound):
		return errors.Wrap(ErrNotFound, msg)
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidOperation),
		errors.Is(err, ErrConflict):
		return err
	default:
		return errors.Wrapf(ErrStorageFailure, "%s: %v", msg, err)
	}
}
