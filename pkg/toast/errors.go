package toast

import "errors"

var (
	// ErrInvalidToast is returned by Show when the options cannot produce a
	// toast. The error also wraps validator.ValidationErrors naming the fields.
	ErrInvalidToast = errors.New("toast: invalid toast")

	// ErrStoreClosed is returned by Show after the provider was closed.
	ErrStoreClosed = errors.New("toast: store is closed")

	// ErrNoProvider is returned by the context helpers when no provider is attached.
	ErrNoProvider = errors.New("toast: no provider in context")
)
