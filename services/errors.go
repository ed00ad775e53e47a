package services

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned whenever a referenced id does not resolve.
var ErrNotFound = errors.New("record not found")

// ValidationError carries the flash message shown when a form is
// redisplayed. Nothing is persisted when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(message string) error {
	return &ValidationError{Message: message}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
