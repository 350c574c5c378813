package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUnconfirmed        = errors.New("email not confirmed")
	ErrBadCredential      = errors.New("invalid credentials")
	ErrVerificationFailed = errors.New("verification failed")
)

func Wrap(sentinel error, context string) error {
	return fmt.Errorf("%w: %s", sentinel, context)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
