package adapter

import "errors"

var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
)
