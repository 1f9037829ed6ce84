// Package logger builds configured slog loggers and provides attribute
// helpers used across the service.
//
//	log := logger.New(logger.WithProduction("waveshop"))
//	logger.SetAsDefault(log)
//
//	log.Error("checkout failed", logger.Error(err), logger.SessionID(id))
package logger
