package repository

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable wraps every persistence failure surfaced by the
// repositories. Callers match it with errors.Is and may retry; the pure
// calculators never see it.
var ErrStorageUnavailable = errors.New("storage unavailable")

// storageErr tags a driver error with ErrStorageUnavailable.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrStorageUnavailable, err)
}
