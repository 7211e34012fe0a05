package endpoints

import "errors"

// Lookup errors. Returned errors wrap these and name the offending identifier.
var (
	ErrUnknownCategory = errors.New("unknown endpoint category")
	ErrUnknownEndpoint = errors.New("unknown endpoint")
)
