package gaps

import "errors"

// ErrInvalidTarget indicates a target with neither a role name nor a
// description to extract requirements from.
var ErrInvalidTarget = errors.New("target needs a role or a description")

const (
	ErrorCodeInvalidInput = "INVALID_INPUT"
	ErrorCodeInternal     = "INTERNAL_ERROR"
)
