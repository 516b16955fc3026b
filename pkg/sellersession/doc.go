// Package sellersession remembers which seller contact details belong to a
// device, so returning sellers do not have to type them again.
//
// The package is a two-tier repository:
//
//   - Repository is the source of truth: one row per device identifier in a
//     remote `seller_sessions` table/collection with upsert semantics.
//     MemoryRepository, PostgresRepository and MongoRepository implement it.
//   - storage.Storage is a best-effort local cache holding only the phone and
//     name. It is used when the repository is unreachable, not provisioned, or
//     has no row for the device.
//
// Service ties both tiers to a device identifier (see pkg/fingerprint).
// Every operation reports success to the caller; degraded mode is exposed
// through the Fallback flag on results instead of through errors, because a
// transient backend issue must never stop a seller from listing.
//
// # Usage
//
//	svc := sellersession.New(repo, profileStorage, fingerprint.NewResolver(profileStorage, collect),
//	    sellersession.WithLogger(log),
//	)
//
//	res := svc.Save(ctx, "0821234567", "Thandi")
//	if res.Fallback {
//	    // saved locally only
//	}
//
//	if p := svc.Describe(ctx); p != nil {
//	    fmt.Println(p.Name, p.Phone)
//	}
//
//	svc.Clear(ctx) // logout
//
// # Consistency
//
// The repository write and the local mirror are not atomic. If they diverge,
// the repository wins on the next successful Load, which rewrites the cache.
package sellersession
