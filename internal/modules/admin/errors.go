package admin

import "errors"

var (
	ErrNotFound                = errors.New("booking not found")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidStatusFilter     = errors.New("invalid status filter")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
