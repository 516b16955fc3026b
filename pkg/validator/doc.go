// Package validator checks listing fields against a fixed, immutable rule set.
//
// A FieldRule describes one field: length bounds, an optional anchored
// pattern, optional numeric bounds, and a single human-readable message that
// is reported whenever any of those checks fails. Rules are grouped into a
// Ruleset keyed by field name; ListingRules is the marketplace default.
//
// # Architecture
//
// Each check is expressed as a small Rule value (a Check func plus the error
// to report). Ruleset.ValidateField sanitises the raw value with
// sanitizer.ForStorage, builds the rules for the field in their fixed order
// (min length, max length, pattern, numeric range) and stops at the first
// failure. Ruleset.ValidateAll runs several fields and collects every
// failure into ValidationErrors.
//
// # Usage
//
//	res := validator.ValidateField(validator.FieldTitle, "Great deal!!")
//	if !res.Valid {
//	    fmt.Println(res.Message)
//	}
//
//	values, err := validator.ListingRules.ValidateAll(
//	    validator.Input{Field: validator.FieldSellerPhone, Value: phone},
//	    validator.Input{Field: validator.FieldSellerName, Value: name},
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    return errs.Get(validator.FieldSellerPhone)
//	}
//	save(values[validator.FieldSellerPhone])
//
// # Error Handling
//
// Validation never panics and never returns a Go error for bad input. A value
// that cannot be parsed as a number for a numeric rule is simply invalid.
// ValidationErrors implements error so aggregated failures can be returned
// from service code and detected with errors.As.
package validator
