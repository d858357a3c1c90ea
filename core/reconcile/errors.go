package reconcile

import "errors"

// ErrMalformedInput indicates a source stream could not be decoded into rows.
// It aborts the build; no partial registry is ever returned.
var ErrMalformedInput = errors.New("malformed input")

// ErrNotFound indicates that no record matches a code or numeric lookup.
var ErrNotFound = errors.New("currency not found")

// ErrCountryNotFound indicates a country has no associated currencies.
var ErrCountryNotFound = errors.New("no associated currencies")
