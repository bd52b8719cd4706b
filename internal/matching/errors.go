package matching

import "errors"

// ErrInvalidInput indicates a job with no skills, no description and no
// title, leaving nothing to score against.
var ErrInvalidInput = errors.New("job has no skills and no description")

const (
	ErrorCodeInvalidInput = "INVALID_INPUT"
	ErrorCodeInternal     = "INTERNAL_ERROR"
)
