package service

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a requested or referenced entity is absent.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a uniqueness invariant would be violated.
	ErrConflict = errors.New("conflict")
	// ErrValidation is returned on malformed input.
	ErrValidation = errors.New("invalid request")
	// ErrTreeTooLarge is returned when a traversal visits more nodes than the
	// configured limit allows.
	ErrTreeTooLarge = errors.New("tree exceeds traversal node limit")
)

func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func objectRef(id int64) string {
	return fmt.Sprintf("object %d", id)
}

func linkRef(id int64) string {
	return fmt.Sprintf("link %d", id)
}

// Cache failures never fail the request; the cache is an optimization.
func logCacheError(err error) {
	logrus.Warnf("tree cache invalidation failed: %v", err)
}

// isMissing reports whether the store error is a plain missing-row error.
func isMissing(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// storeError translates gorm errors into domain error kinds. Anything the
// store reports that is not a known domain condition passes through as an
// infrastructure error.
func storeError(err error, entity string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFoundf("%s", entity)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return conflictf("%s already exists", entity)
	default:
		return err
	}
}
