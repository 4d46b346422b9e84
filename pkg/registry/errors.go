package registry

import "errors"

// Predefined errors for the registry package.
var (
	// ErrNotFound indicates the requested provider name is not registered.
	ErrNotFound = errors.New("provider not found")

	// ErrAlreadyRegistered indicates an attempt to register a name that is
	// already taken. Registration is append-only per name; the first
	// registration wins.
	ErrAlreadyRegistered = errors.New("provider already registered")

	// ErrInvalidName indicates a registration with an empty provider name.
	ErrInvalidName = errors.New("provider name must be a non-empty string")

	// ErrIncompatibleVersion indicates a driver that requires a newer
	// framework release than the one running.
	ErrIncompatibleVersion = errors.New("provider requires a newer framework version")
)
