// Package logger provides a slog.Logger factory with env-driven defaults.
//
// LOG_LEVEL and LOG_FORMAT set the baseline (info/json), and functional
// options override it per logger:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//	)
package logger
