package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	ErrInvalidAddress = errors.New("invalid adapter http address")
	ErrNoLocation     = errors.New("created section has no Location header")
)
