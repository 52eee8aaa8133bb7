package client

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrBlockedScheme      = errors.New("blocked url scheme")
	ErrNetworkUnavailable = errors.New("network unavailable")
	ErrUnexpectedStatus   = errors.New("unexpected response status")
	ErrInvalidEncoding    = errors.New("invalid utf-8 content")
	ErrIndexUnavailable   = errors.New("rfc index unavailable")
	ErrInvalidID          = errors.New("invalid rfc id")
)

type InvalidIDError struct {
	ID     int
	Latest int
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("Invalid RFC ID %d, must be between 0 and %d", e.ID, e.Latest)
}

func (e *InvalidIDError) Is(err error) bool {
	return err == ErrInvalidID
}

// blockedSchemeError matches both ErrBlockedScheme and ErrInvalidInput.
type blockedSchemeError struct {
	scheme string
}

func (e *blockedSchemeError) Error() string {
	return fmt.Sprintf("%s: invalid url scheme '%s', allowed schemes are http, https", ErrInvalidInput, e.scheme)
}

func (e *blockedSchemeError) Is(err error) bool {
	return err == ErrBlockedScheme || err == ErrInvalidInput
}
