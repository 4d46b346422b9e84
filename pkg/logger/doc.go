// Package logger builds configured log/slog loggers for the framework.
//
// It is a thin factory over slog's built-in handlers: pick a format and
// level, optionally attach static attributes, and install the result as the
// process default if desired.
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatJSON),
//		logger.WithLevel(slog.LevelInfo),
//		logger.WithAttr(slog.String("service", "translator")),
//	)
//	logger.SetAsDefault(log)
//
// The registry and provider packages log through whatever *slog.Logger they
// are handed (or the slog default), so applications are free to ignore this
// package entirely and bring their own handler.
package logger
