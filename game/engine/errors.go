package engine

import "errors"

// Contract violations. An illegal move is never an error: validators return
// false for those.
var (
	ErrInvalidStack       = errors.New("invalid stack type")
	ErrMalformedPosition  = errors.New("malformed position")
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrInvalidCard        = errors.New("invalid card")
	ErrInvalidState       = errors.New("invalid game state")
	ErrInvalidConfig      = errors.New("config validation")
)
