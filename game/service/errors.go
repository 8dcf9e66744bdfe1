package service

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrConfigNotFound  = errors.New("configuration not found")
	// ErrInvalidMove marks requests that do not name a move at all, such as
	// malformed or out-of-range positions. A well-formed but illegal move is
	// reported through MoveResult.Success instead.
	ErrInvalidMove = errors.New("invalid move request")
	// ErrInvalidRequest marks other client input the service rejects.
	ErrInvalidRequest = errors.New("invalid request")
)
