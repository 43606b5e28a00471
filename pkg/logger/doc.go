// Package logger builds *slog.Logger values for formkit components and
// applications.
//
// New applies Option functions on top of JSON output at info level:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "formkit-demo"),
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
// The handler is wrapped in LogHandlerDecorator, which runs every
// ContextExtractor at log time. Attributes stored in a context with
// WithContextAttrs are always added, so request scoped values such as the
// request id reach records logged deeper in the call stack:
//
//	ctx = logger.WithContextAttrs(ctx, logger.RequestID(id))
//	log.InfoContext(ctx, "form submitted", logger.Form("signup"))
//
// Attribute helpers (Component, Form, Field, Locale, Currency, RequestID,
// Error, ...) keep key names consistent. Error and RequestID return an empty
// Attr for zero input, which slog drops.
//
// Components accept a logger through options and fall back to Discard.
package logger
