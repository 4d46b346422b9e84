package provider

import "errors"

// Predefined errors for the provider package.
var (
	// ErrInvalidConfig indicates the translation configuration failed
	// validation at provider construction.
	ErrInvalidConfig = errors.New("invalid translation config")

	// ErrMissingName indicates a driver without a name, which cannot be
	// constructed or registered.
	ErrMissingName = errors.New("provider name must be set")

	// ErrNilFactory indicates a driver that does not satisfy the provider
	// contract because it carries no constructor.
	ErrNilFactory = errors.New("provider driver must supply a factory")

	// ErrAsyncNotImplemented indicates a driver that declares async support
	// while its translator does not implement AsyncTranslator. This is a
	// provider bug and fails loudly instead of silently falling back.
	ErrAsyncNotImplemented = errors.New("async translation declared but not implemented")
)
