// Package logger wraps log/slog with functional options, attribute helpers
// and transparent injection of values stored in context.Context.
//
// New builds a *slog.Logger from Option values: output format, minimum level,
// static attributes and ContextExtractor callbacks. NewFromConfig does the
// same from a Config loaded out of the environment (LOG_LEVEL, LOG_FORMAT,
// APP_ENV, SERVICE_NAME).
//
// The handler chain is a text or json slog.Handler wrapped in ContextHandler,
// which runs the registered extractors on every Handle call.
//
// # Attributes
//
// attr.go keeps attribute keys consistent across packages: Component,
// PostOfficeID, RecipientID, LetterType, ExecutorID, Handler, Count, Panic.
// Error and Errors return an empty Attr for nil errors, so
//
//	log.Info("delivered", logger.Error(err))
//
// needs no nil check.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "relay"),
//	    logger.WithContextValue("trace_id", traceKey{}),
//	)
//	logger.SetAsDefault(log)
package logger
