package activity

import "errors"

// ErrInvalidInput indicates invalid input for activity operations.
var ErrInvalidInput = errors.New("invalid activity input")
