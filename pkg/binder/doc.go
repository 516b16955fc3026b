// Package binder decodes HTTP request bodies into typed request values.
//
// JSON returns a Bind function for the handler package. It requires an
// application/json content type, caps the body size, decodes strictly
// (unknown fields and trailing data are rejected) and reports failures with
// the sentinel errors below so the error handler can map them to status
// codes.
//
//	http.HandleFunc("/listings/validate", handler.Wrap(validate,
//	    handler.WithBinder[handler.Context, listing.Draft](binder.JSON()),
//	))
//
// # Error Handling
//
//   - ErrMissingContentType: the request has no Content-Type header
//   - ErrUnsupportedMediaType: the content type is not application/json
//   - ErrFailedToParseJSON: the body is empty, too large or malformed
package binder
