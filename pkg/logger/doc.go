// Package logger builds *slog.Logger values for the xd command from a set of
// functional options, with helper attribute constructors and injection of
// values stored in context.Context.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it in LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks for every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.Env)),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	    logger.WithAttr(logger.Component("xd")),
//	)
//	log.DebugContext(ctx, "formatted", logger.Layout(layout))
//
// Records go to stderr unless WithOutput says otherwise, so stdout stays
// reserved for command output.
//
// # Configuration
//
//   - WithEnvironment – text/debug for development, json/info otherwise.
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   - WithLevel – minimum level.
//   - WithAttr – static attributes.
//   - WithContextExtractors / WithContextValue – attributes from context.
//
// ParseFormat and ParseLevel turn flag and env values into options input.
//
// Error and Errors produce attributes only for non-nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
