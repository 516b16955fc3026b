// Package logger builds *slog.Logger instances with consistent options,
// attribute helpers and context injection for listingkit services.
//
// New applies functional options (format, level, output, static attributes,
// environment presets) and wraps the resulting handler with a decorator that
// runs ContextExtractor callbacks on every record, so request-scoped values
// such as the device identifier appear in logs without being passed around.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "listingd"),
//	    logger.WithContextExtractors(fingerprint.LogExtractor),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "seller session saved",
//	    logger.Component("sellersession"),
//	    logger.Fallback(res.Fallback),
//	)
//
// # Error Handling
//
// Error and Errors return an empty attribute for nil errors, which slog drops,
// so callers can log unconditionally.
package logger
