package store

import "errors"

var (
	// ErrInvalidStatus rejects a status outside open, pending and closed.
	ErrInvalidStatus = errors.New("invalid ticket status")
	// ErrEmptyComment rejects a blank comment before any request is made.
	ErrEmptyComment = errors.New("comment content is empty")
	// ErrNoTicket is returned by per-ticket stores created without a ticket id.
	ErrNoTicket = errors.New("no ticket selected")
)
