package database

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrInvalidReference = errors.New("invalid reference")
)

// NotFoundError names the missing entity, e.g. "Area not found".
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ConflictError carries a message safe to show to API clients.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Unwrap() error { return ErrConflict }

// ReferenceError reports a request body pointing at a parent row that does not exist.
type ReferenceError struct {
	Entity string
}

func (e *ReferenceError) Error() string { return e.Entity + " does not exist" }

func (e *ReferenceError) Unwrap() error { return ErrInvalidReference }
