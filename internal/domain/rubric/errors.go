package rubric

import "errors"

// Sentinel kinds for rubric errors.
var (
	ErrInvalidItem    = errors.New("invalid rubric item")
	ErrLayoutMismatch = errors.New("rubric does not match import layout")
)
