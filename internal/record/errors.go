package record

import "errors"

var (
	// ErrInvalidInput indicates a caller-correctable value or shape problem.
	// The store is never touched when this is returned.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates the row scoped by (wallet_id, id) does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrRowMapping indicates the store returned a row the core cannot decode.
	ErrRowMapping = errors.New("row mapping failed")

	// ErrStorage indicates a connection or statement execution failure.
	ErrStorage = errors.New("storage failure")
)
