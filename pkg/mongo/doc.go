// Package mongo connects the document-store backend of the seller session
// repository using the official mongo-driver v2.
//
// Config is read from MONGODB_* environment variables. New retries the
// initial connection and ping; NewWithDatabase also selects the database
// that sellersession.NewMongoRepository writes to.
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "")
//	if err != nil {
//	    return err
//	}
//	repo := sellersession.NewMongoRepository(db)
//	if err := repo.EnsureIndexes(ctx); err != nil {
//	    return err
//	}
//
// Errors are sentinel values joined with the driver error; use errors.Is.
package mongo
