// Package fingerprint derives and caches a stable pseudo-identifier for a
// browser profile.
//
// A device identifier is built once from environment characteristics (user
// agent, language, screen geometry, colour depth, timezone offset, storage
// capability flags) plus a generation timestamp. The joined components are
// folded with a 32-bit rolling string hash (h = h*31 + c over UTF-16 code
// units, wrapped to int32) and formatted as
//
//	device_<base36(|hash|)>_<base36(generatedAtMillis)>
//
// The hash is kept bit-for-bit compatible with identifiers produced by
// existing browser clients so ids survive a migration. It is neither a
// security credential nor a uniqueness guarantee; collisions are possible.
//
// # Architecture
//
//   - Components / Hash / Format – pure derivation.
//   - Resolver – returns the identifier cached in storage.Storage or derives,
//     persists and returns a new one.
//   - FromRequest – collects Components from HTTP headers for server-side
//     callers.
//   - Middleware – resolves the identifier per request and stores it in the
//     request context (DeviceIDFromContext); LogExtractor exposes it to
//     pkg/logger.
//
// # Usage
//
//	r := fingerprint.NewResolver(profileStorage, func(ctx context.Context) fingerprint.Components {
//	    return fingerprint.FromRequest(req)
//	})
//	id := r.Resolve(ctx) // same value on every call for this profile
//
// # Error Handling
//
// Resolve never fails. Storage read errors lead to a fresh identifier and
// storage write errors are logged; the identifier is returned either way.
package fingerprint
