package domain

import (
	"errors"
	"fmt"
)

// Domain errors. Every error is fatal to the run: the merger is a
// human-supervised batch step with no retry or partial-success path.
var (
	ErrStoreNotFound = errors.New("message store not found")
	ErrStoreParse    = errors.New("message store is not a valid locale mapping")
	ErrStoreWrite    = errors.New("message store could not be written")
	ErrEmptyBatch    = errors.New("batch contains no messages")
)

// MissingLocaleError reports a merge that targets a locale absent from the
// loaded store. The merger only adds to existing locale tables; it never
// creates one.
type MissingLocaleError struct {
	Locale string
}

func (e *MissingLocaleError) Error() string {
	return fmt.Sprintf("locale %q is not present in the store", e.Locale)
}

// IsMissingLocale reports whether err is (or wraps) a MissingLocaleError.
func IsMissingLocale(err error) bool {
	var target *MissingLocaleError
	return errors.As(err, &target)
}
