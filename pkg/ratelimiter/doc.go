// Package ratelimiter implements the advisory submission cooldown for listings.
//
// A Cooldown keeps a single "last accepted submission" timestamp per browser
// profile in a storage.Storage, under one fixed key. Check reports whether a
// new submission is allowed (the cooldown window has fully elapsed) and, if
// not, how many whole minutes remain, rounded up. Record overwrites the
// timestamp and must be called only after a submission was accepted.
//
// # Usage
//
//	cd := ratelimiter.NewCooldown(profileStorage)
//
//	res := cd.Check(ctx)
//	if !res.Allowed {
//	    return res.Message // "Please wait 5 minutes before submitting another listing"
//	}
//	// ... submit ...
//	cd.Record(ctx)
//
// # Error Handling
//
// Check and Record never fail the caller. A storage read error or an
// unparseable timestamp is treated as "no previous submission"; a storage
// write error is logged. The limiter is advisory and trivially bypassed by
// clearing storage; servers must throttle on their own.
//
// Concurrent Check/Record pairs for the same profile are not coordinated; the
// last Record wins.
package ratelimiter
