// Package logger provides structured logging utilities built on Go's standard
// slog package. It offers a small factory with environment presets and a set
// of pre-built attributes for the logging patterns this service uses.
//
// Basic usage:
//
//	log := logger.New(
//		logger.WithProduction("authgate"),
//	)
//
//	log.Info("server starting",
//		logger.Component("server"),
//		logger.Event("startup"),
//	)
//
// Attribute helpers follow the empty-Attr pattern: passing a nil error or an
// empty id yields an attribute that slog silently drops, so call sites never
// need nil checks:
//
//	log.Error("login failed", logger.Error(err), logger.SessionID(id))
package logger
