// Package requestid tags every API request with an identifier that follows
// it through logs and back to the client in the X-Request-ID header.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LogExtractor))
//
// Client supplied ids are reused when they are at most 128 characters of
// letters, digits, '-' and '_'; anything else is replaced by a new UUID.
package requestid
