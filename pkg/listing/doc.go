// Package listing guards listing submissions before they are sent upstream.
//
// Guard.Validate runs every field of a Draft through the listing rules of
// pkg/validator, rejects prohibited phrases, reports profanity to the review
// channel without blocking, and enforces the submission cooldown. All
// failures are collected into one Outcome so the form can show them at once.
//
//	guard := listing.NewGuard(ratelimiter.NewCooldown(profileStorage),
//	    listing.WithLogger(log),
//	)
//
//	out := guard.Validate(ctx, draft)
//	if !out.Valid {
//	    return out.Errors
//	}
//	if err := publish(ctx, out.Sanitized); err != nil {
//	    return err
//	}
//	guard.RecordSubmission(ctx)
//
// The guard is advisory. It improves feedback and deters casual abuse; the
// server still validates independently.
package listing
