// Package environment names the environment the xd command runs in
// (development, staging, production) and carries it through context.Context
// so log records can be tagged with it.
//
//	env := environment.Parse(os.Getenv("XD_ENV")) // "prod" -> Production
//	ctx = environment.WithContext(ctx, env)
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//	log.InfoContext(ctx, "started") // ... env=production
//
// Missing values result in the zero value ("").
package environment
