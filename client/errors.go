package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is returned for every failed call. Message is short and suitable
// for showing to a user; Reason carries the server's error text if any.
type Error struct {
	Op      string // e.g. "fetch wallpapers"
	Status  int    // HTTP status, 0 if no response was received
	Message string // e.g. "Failed to fetch wallpapers"
	Reason  string
	Err     error // transport or decoding failure
}

func (e *Error) Error() string {
	switch {
	case e.Reason != "":
		return fmt.Sprintf("%s: %s", e.Message, e.Reason)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether err is a 401 from an admin call or login.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsNotFound reports whether err is a 404. Public single-item lookups never
// return it; they return a nil result instead.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsValidation reports whether err is a 400 for a malformed request.
func IsValidation(err error) bool {
	return hasStatus(err, http.StatusBadRequest)
}

func hasStatus(err error, status int) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == status
}
