package translatekit

import (
	"github.com/translatekit/translatekit/pkg/logger"
)

// Version is the framework release the running binary was built from.
// Drivers may declare a minimum compatible version; the registry compares
// it against this value before accepting a registration.
const Version = "0.2.0"

// ConfigureLogging installs a framework-wide slog default logger.
// It is a convenience for applications that have no logging setup of their
// own; anything more involved should build a logger with pkg/logger directly
// and pass it to the registry via registry.WithLogger.
func ConfigureLogging(opts ...logger.Option) {
	logger.SetAsDefault(logger.New(opts...))
}
