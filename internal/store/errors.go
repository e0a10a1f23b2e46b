package store

import "errors"

var (
	errInvalidPage = errors.New("page number must be at least 1")
	errInvalidSize = errors.New("page size must be between 1 and 20")
	errNotFound    = errors.New("processed agent data not found")
)
