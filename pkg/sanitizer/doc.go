// Package sanitizer cleans user-supplied listing text before it is stored or
// rendered.
//
// Two distinct operations are provided and they must not be confused:
//
//   - ForDisplay escapes markup-significant characters so text can be placed
//     into an HTML page as plain content. Nothing visible is lost.
//   - ForStorage coerces a value to text, trims it, removes every angle
//     bracket and caps the length at MaxStorageLength runes. It mutates
//     content and is applied to every listing field before validation.
//
// Smaller helpers (Trim, RemoveChars, LimitLength, ...) are exported so they
// can be combined into custom pipelines with Apply and Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.StripAngleBrackets,
//	)
//
//	safe := clean("  <b>hi</b>  ") // "bhi/b"
//
// # Error Handling
//
// None of the helpers returns an error. Absent or unconvertible input yields
// an empty string.
//
// Sanitisation here is a best-effort client-side filter, not a security
// boundary; the receiving service is expected to validate on its own.
package sanitizer
