package gallery

import "errors"

var (
	ErrParseCatalog    = errors.New("gallery: failed to parse catalog")
	ErrInvalidExample  = errors.New("gallery: invalid example")
	ErrExampleNotFound = errors.New("gallery: example not found")
)
